package pg

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/account"
)

// AccountDao is a data access object that maps directly to the 'accounts' table in PostgreSQL.
type AccountDao struct {
	bun.BaseModel `bun:"table:accounts,alias:a"`
	ID            string     `bun:"id,pk,type:uuid"`
	WalletAddress string     `bun:"wallet_address,unique,notnull,type:varchar(42)"`
	DisplayName   *string    `bun:"display_name,type:varchar(255)"`
	Email         *string    `bun:"email,type:varchar(255)"`
	AvatarURL     *string    `bun:"avatar_url,type:text"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,default:current_timestamp"`
	LastLogin     *time.Time `bun:"last_login"`
}

// toAccountDao converts an account.Account to AccountDao.
func toAccountDao(acc *account.Account) *AccountDao {
	dao := &AccountDao{
		ID:            acc.ID,
		WalletAddress: acc.WalletAddress,
	}

	if acc.DisplayName != "" {
		dao.DisplayName = &acc.DisplayName
	}
	if acc.Email != "" {
		dao.Email = &acc.Email
	}
	if acc.AvatarURL != "" {
		dao.AvatarURL = &acc.AvatarURL
	}
	if acc.LastLogin != nil {
		dao.LastLogin = acc.LastLogin
	}

	return dao
}

// toAccount converts an AccountDao to account.Account.
func toAccount(dao *AccountDao) *account.Account {
	acc := &account.Account{
		ID:            dao.ID,
		WalletAddress: dao.WalletAddress,
		CreatedAt:     dao.CreatedAt,
	}

	if dao.DisplayName != nil {
		acc.DisplayName = *dao.DisplayName
	}
	if dao.Email != nil {
		acc.Email = *dao.Email
	}
	if dao.AvatarURL != nil {
		acc.AvatarURL = *dao.AvatarURL
	}
	if dao.LastLogin != nil {
		acc.LastLogin = dao.LastLogin
	}

	return acc
}
