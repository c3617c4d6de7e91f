package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/pixwall/internal/domain"
)

// shareTokenTTL bounds how long a copied link stays valid. Tokens are
// self-contained so a share can outlive nothing but the secret.
const shareTokenTTL = 7 * 24 * time.Hour

// ShareService issues and resolves signed share links for a single image
// or for the gallery with a filter preset. Tokens are HS256 JWTs; nothing
// is stored server-side.
type ShareService struct {
	gallery *GalleryService
	secret  []byte
}

// NewShareService creates a new ShareService.
func NewShareService(gallery *GalleryService, secret string) *ShareService {
	return &ShareService{gallery: gallery, secret: []byte(secret)}
}

// ShareView is what a resolved token points at: exactly one of a single
// record or a gallery filter preset.
type ShareView struct {
	Image  *domain.Image
	Filter *domain.FilterState
}

// CreateImageShare returns a signed token for one image. The image must
// exist at creation time.
func (s *ShareService) CreateImageShare(imageID int64) (string, error) {
	if _, err := s.gallery.Get(imageID); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(imageID, 10),
		"kind": "image",
		"iat":  now.Unix(),
		"exp":  now.Add(shareTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign share token: %w", err)
	}
	return signed, nil
}

// CreateGalleryShare returns a signed token that captures a filter
// preset, so a recipient opens the gallery pre-filtered.
func (s *ShareService) CreateGalleryShare(filter domain.FilterState) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"kind":     "gallery",
		"category": filter.Category,
		"query":    filter.Query,
		"iat":      now.Unix(),
		"exp":      now.Add(shareTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign share token: %w", err)
	}
	return signed, nil
}

// Resolve validates a token and returns what it shares. A token for an
// image that no longer resolves reports ErrNotFound; a malformed,
// tampered, or expired token reports ErrInvalidInput.
func (s *ShareService) Resolve(tokenString string) (*ShareView, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: bad share token", domain.ErrInvalidInput)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: bad share token", domain.ErrInvalidInput)
	}

	kind, _ := claims["kind"].(string)
	switch kind {
	case "image":
		sub, err := claims.GetSubject()
		if err != nil {
			return nil, fmt.Errorf("%w: bad share token", domain.ErrInvalidInput)
		}
		id, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad share token", domain.ErrInvalidInput)
		}
		img, err := s.gallery.Get(id)
		if err != nil {
			return nil, err
		}
		return &ShareView{Image: &img}, nil
	case "gallery":
		category, _ := claims["category"].(string)
		query, _ := claims["query"].(string)
		return &ShareView{Filter: &domain.FilterState{Category: category, Query: query}}, nil
	}
	return nil, fmt.Errorf("%w: unknown share kind", domain.ErrInvalidInput)
}
