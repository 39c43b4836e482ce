package models

import (
	"strconv"
	"strings"
)

// StandeeTypes is the fixed product catalog offered by the order form.
var StandeeTypes = []string{
	"1 QR Standee",
	"2 QR Standee",
	"3 QR Standee",
	"4 QR Standee",
	"5 QR Standee",
	"6 QR Standee",
	"7 QR Standee",
	"8 QR Standee",
	"3 QR Hrzntl Standee",
	"4 QR Hrzntl Standee",
	"5 QR Hrzntl Standee",
	"Business Card",
	"VCard",
	"VCard 2 QR",
}

// Icons is the catalog of selectable brand badges.
var Icons = []string{
	"Google",
	"Instagram",
	"UPI",
	"Facebook",
	"YouTube",
	"Whatsapp",
	"Website",
	"justdial",
}

func IsStandeeType(t string) bool {
	for _, s := range StandeeTypes {
		if s == t {
			return true
		}
	}
	return false
}

func IsIcon(name string) bool {
	for _, ic := range Icons {
		if ic == name {
			return true
		}
	}
	return false
}

// IconsOffered reports whether the icon picker applies to the given standee
// type at all. Plain business cards and VCards carry no icons.
func IconsOffered(standeeType string) bool {
	if standeeType == "" {
		return false
	}
	return standeeType != "Business Card" && standeeType != "VCard"
}

// IconLimit returns the maximum number of icons selectable for the standee
// type. ok is false when no limit applies: either icons are unlimited (QR
// count of six and above) or the type carries no icons at all.
func IconLimit(standeeType string) (limit int, ok bool) {
	if standeeType == "VCard 2 QR" {
		return 2, true
	}
	i := 0
	for i < len(standeeType) && standeeType[i] >= '0' && standeeType[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(standeeType[:i])
	if err != nil || n > 5 {
		return 0, false
	}
	return n, true
}

// SplitIcons parses the comma-joined wire form of the icon selection.
func SplitIcons(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
