package session

import (
	"github.com/oarkflow/paseto/token"
	"go.uber.org/zap"
)

// mintToken wraps the session id in an encrypted local token, persisted as
// "the current session" marker for this view. The secret is a local
// configuration value; this is a restart-survival convenience, not transport
// security.
func (m *Manager) mintToken(sessionID string) (string, error) {
	t := token.CreateToken(m.timeout, token.AlgEncrypt)
	if err := token.RegisterClaims(t, map[string]any{
		"sid": sessionID,
		"iat": m.now().Unix(),
	}); err != nil {
		return "", err
	}
	return token.EncryptToken(t, m.secret)
}

func (m *Manager) verifyToken(tokenStr string) (string, bool) {
	decTok, err := token.DecryptToken(tokenStr, m.secret)
	if err != nil {
		m.log.Debug("token decryption failed", zap.Error(err))
		return "", false
	}
	sid, ok := decTok.Claims["sid"].(string)
	return sid, ok && sid != ""
}
