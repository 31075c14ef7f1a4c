package entraid

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// session holds the state of one authentication attempt: the resolved tenant
// and the token pair returned by the code exchange. Nothing in it is shared
// across attempts.
type session struct {
	strategy *Strategy
	tenant   *ResolvedTenant
	token    *Token

	once sync.Once
	raw  jwt.MapClaims
	err  error
}

// rawInfo validates the ID token and merges its claims with the access-token
// claims. The result is computed once per attempt; repeated reads return the
// cached value.
func (s *session) rawInfo() (jwt.MapClaims, error) {
	s.once.Do(func() {
		s.raw, s.err = s.buildRawInfo()
	})
	return s.raw, s.err
}

func (s *session) buildRawInfo() (jwt.MapClaims, error) {
	if s.strategy.config.VerifySignature {
		if err := s.strategy.verifyIDToken(s.tenant, s.token.IDToken); err != nil {
			return nil, err
		}
	}

	idClaims, err := decodeClaims(s.token.IDToken)
	if err != nil {
		s.strategy.config.Logger.Debug("id token did not decode as a JWT",
			zap.Error(err))
	}

	// Validation applies to the ID-token payload before the merge. A failure
	// aborts the attempt; the merge never sees unvalidated claims.
	if err := validateIDClaims(idClaims, s.tenant, s.strategy.config.Leeway); err != nil {
		return nil, err
	}

	accessClaims, err := decodeClaims(s.token.AccessToken)
	if err != nil {
		s.strategy.config.Logger.Debug("access token did not decode as a JWT, proceeding without its claims",
			zap.Error(err))
	}

	return mergeClaims(idClaims, accessClaims), nil
}

// identity projects the merged, validated claim set.
func (s *session) identity() (Identity, error) {
	raw, err := s.rawInfo()
	if err != nil {
		return Identity{}, err
	}
	if s.strategy.config.LegacyUID {
		return projectLegacyIdentity(raw), nil
	}
	return projectIdentity(raw), nil
}
