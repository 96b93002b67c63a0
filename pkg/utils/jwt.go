package utils

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName carries the session token for clients that do not send a bearer header.
const SessionCookieName = "sessionToken"

const sessionTokenType = "storefront_session"

var secretKey []byte

func SetSecret(key string) {
	secretKey = []byte(key)
}

// NewSessionID returns a fresh random storefront session id.
func NewSessionID() string {
	return uuid.NewString()
}

// GenerateSessionToken signs a token binding the client to sessionID.
func GenerateSessionToken(sessionID string, expiry time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", fmt.Errorf("jwt secret not set")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sessionID,
		"typ": sessionTokenType,
		"iat": now.Unix(),
		"exp": now.Add(expiry).Unix(),
	})

	return token.SignedString(secretKey)
}

func ValidateJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ValidateSessionToken returns the session id carried by tokenString.
func ValidateSessionToken(tokenString string) (string, error) {
	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return "", err
	}
	if typ, _ := claims["typ"].(string); typ != sessionTokenType {
		return "", fmt.Errorf("not a session token")
	}
	sub, _ := claims["sub"].(string)
	if _, err := uuid.Parse(sub); err != nil {
		return "", fmt.Errorf("invalid session id")
	}
	return sub, nil
}

// ExtractSessionToken reads the token from the Authorization header or the session cookie.
func ExtractSessionToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// SessionTokenHeader echoes a freshly issued session token to API clients.
const SessionTokenHeader = "X-Session-Token"

// IssueSession mints a session, writes its token as a cookie and response header,
// and returns the session id.
func IssueSession(w http.ResponseWriter, expiry time.Duration, secure bool) (sessionID, token string, err error) {
	sessionID = NewSessionID()
	token, err = GenerateSessionToken(sessionID, expiry)
	if err != nil {
		return "", "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(expiry.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(SessionTokenHeader, token)
	return sessionID, token, nil
}
