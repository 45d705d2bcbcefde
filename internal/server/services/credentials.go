package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/credential"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/dmitrijs2005/memoria/internal/server/repositories/orders"
)

// checkCredential resolves key to its unconsumed order. The configured
// admin key passes without an order; the returned order is nil then.
func checkCredential(ctx context.Context, repo orders.Repository, key, admin string, now time.Time) (*models.Order, error) {
	if !credential.WellFormed(key) {
		return nil, common.ErrCredentialInvalid
	}
	if admin != "" && subtle.ConstantTimeCompare([]byte(key), []byte(admin)) == 1 {
		return nil, nil
	}

	o, err := repo.GetBySecretKey(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrCredentialInvalid
		}
		return nil, wrapInternal("lookup credential", err)
	}
	if o.SecretKeyConsumedAt != nil {
		return nil, common.ErrCredentialInvalid
	}
	if o.SecretKeyExpiresAt != nil && now.After(*o.SecretKeyExpiresAt) {
		return nil, common.ErrCredentialExpired
	}
	return o, nil
}
