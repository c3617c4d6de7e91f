package service

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/buckket/go-blurhash"
)

// Placeholder hashes are 28-character blurhash strings decoded into a
// blurred preview while the full image loads. Records without a hash get
// one derived from their title through an ordered rule list, falling back
// to a constant; nothing here validates hash content beyond decoding.

const (
	hashMountain    = "L6Dd+^t7WBayofj[ayjtRPWBayj["
	hashBeach       = "L5H2EC=_0g9F%00M%MRj0K%Mt7V@"
	hashCity        = "L4A,}WI9s:og*0oeR*R-E1WBkCR*"
	hashForest      = "L9B:|goJ0gfQIoaeWVfQ%NaefkfQ"
	hashDesert      = "LCFZk^xu0JM|-:t7RkxuNGRPRjRj"
	hashWaterfall   = "L6DdIVt7WBayofj[ayjtRPWBofj["
	hashLights      = "L45q-wRj}tRkIpR*tSR*s9tSn$Rj"
	hashAutumn      = "LBDLQ}I;nQsV~V%}s+nQ58tmWVt7"
	hashCoral       = "L8C6?cR*C@oy~ot7R*ae0gWVxZt7"
	hashSnowy       = "L9Cc7?IV.9WB~qt7t7RjM{j[ofj["
	hashLavender    = "LAE:JOI;xat7~o%2WBRj%Lxaj[M{"
	hashCountryside = "LBDuZ~=|D%nh_4t7M{s:0gM{M{s:"
)

// DefaultPlaceholder is used when no rule matches.
const DefaultPlaceholder = "L9C}KID*D%IT.TM{ofWB00%Mt7M{"

// placeholderRule pairs a keyword with the hash it selects. Rules are
// evaluated in order; the first match wins.
type placeholderRule struct {
	keyword string
	hash    string
}

var titlePlaceholderRules = []placeholderRule{
	{"mountain", hashMountain},
	{"beach", hashBeach},
	{"city", hashCity},
	{"forest", hashForest},
	{"desert", hashDesert},
	{"waterfall", hashWaterfall},
	{"lights", hashLights},
	{"autumn", hashAutumn},
	{"coral", hashCoral},
	{"snowy", hashSnowy},
	{"lavender", hashLavender},
	{"countryside", hashCountryside},
}

// PlaceholderForTitle derives a hash for a record that carries none.
func PlaceholderForTitle(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range titlePlaceholderRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.hash
		}
	}
	return DefaultPlaceholder
}

var uploadPlaceholderRules = []placeholderRule{
	{"mountain", hashMountain},
	{"landscape", hashMountain},
	{"beach", hashBeach},
	{"ocean", hashBeach},
	{"city", hashCity},
	{"forest", hashForest},
	{"tree", hashForest},
}

// UploadPlaceholder picks a heuristic hash for a fresh upload: filename
// keywords first, then a per-format default, then the global default.
func UploadPlaceholder(filename, contentType string) string {
	lower := strings.ToLower(filename)
	for _, rule := range uploadPlaceholderRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.hash
		}
	}
	switch {
	case strings.Contains(contentType, "image/jpeg"), strings.Contains(contentType, "image/jpg"):
		return hashAutumn
	case strings.Contains(contentType, "image/png"):
		return hashSnowy
	}
	return DefaultPlaceholder
}

// RenderPlaceholder decodes a blurhash into PNG bytes at the given size.
func RenderPlaceholder(hash string, width, height int) ([]byte, error) {
	if hash == "" {
		hash = DefaultPlaceholder
	}
	img, err := blurhash.Decode(hash, width, height, 1)
	if err != nil {
		return nil, fmt.Errorf("decode blurhash: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
