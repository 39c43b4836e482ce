package configs

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	MongoURI        string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB         string `env:"MONGO_DB" envDefault:"bharattapp"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"standee_orders"`

	CloudinaryURL string `env:"CLOUDINARY_URL" envDefault:""`
	UploadFolder  string `env:"UPLOAD_FOLDER" envDefault:"standee_app"`

	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:""`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"standee-orders"`

	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8081"`
	DraftPath  string `env:"DRAFT_PATH" envDefault:"web/draft.json"`
}

func LoadConfig(_ string) (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EventsEnabled reports whether the optional order-created event stream is
// configured. An empty broker list disables publishing.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokersSlice()) > 0
}
