package jwt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"homegame-server/internal/config"
)

// Issuer issues the JWT
const Issuer = "homegame-server"

// Audience is the intended JWT audience
const Audience = "homegame-host"

var secret []byte
var ttl time.Duration

// LoadSecret will load the host token secret
// If no secret is configured, a random one is generated and tokens won't survive a restart
// this method should only be called once.
func LoadSecret() {
	cfg := config.Instance().HostToken
	ttl = cfg.TTL
	if cfg.Secret != "" {
		secret = []byte(cfg.Secret)
		return
	}

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		logrus.WithError(err).Fatal("could not generate a host token secret")
	}

	logrus.Warn("no host token secret configured, using a random secret")
	secret = b
}

// SignHost will sign a host token for the session code
func SignHost(code string) (string, error) {
	if secret == nil {
		panic("LoadSecret() not called")
	}

	now := time.Now()
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.RegisteredClaims{
		Audience:  jwtgo.ClaimStrings{Audience},
		ExpiresAt: jwtgo.NewNumericDate(now.Add(ttl)),
		ID:        uuid.New().String(),
		IssuedAt:  jwtgo.NewNumericDate(now),
		Issuer:    Issuer,
		Subject:   code,
	})

	return token.SignedString(secret)
}

// ValidHost will validate a signed host token and return the session code it was issued for
func ValidHost(signedString string) (string, error) {
	if secret == nil {
		panic("LoadSecret() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &jwtgo.RegisteredClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	})

	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwtgo.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("expected jwt.RegisteredClaims, got %T", token.Claims)
	}

	if !containsAudience(claims.Audience, Audience) {
		return "", errors.New("invalid audience")
	}

	if claims.Issuer != Issuer {
		return "", errors.New("invalid issuer")
	}

	if claims.Subject == "" {
		return "", errors.New("missing session code")
	}

	return claims.Subject, nil
}

func containsAudience(audiences jwtgo.ClaimStrings, target string) bool {
	for _, aud := range audiences {
		if aud == target {
			return true
		}
	}

	return false
}
