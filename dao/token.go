package dao

import (
	"context"
	"errors"

	"neutalk/models"

	"gorm.io/gorm"
)

type Tokens struct {
	Repo[models.AuthToken]
}

func NewTokens(db *gorm.DB) *Tokens {
	return &Tokens{
		Repo: NewRepo[models.AuthToken](db),
	}
}

// GetOrCreate 返回用户现有令牌，没有则落库 key。
// user_id 唯一索引保证并发登录也只会产生一条记录。
func (t *Tokens) GetOrCreate(ctx context.Context, userID uint64, key string) (*models.AuthToken, error) {
	token := models.AuthToken{}
	err := t.Db.WithContext(ctx).
		Where(models.AuthToken{UserID: userID}).
		Attrs(models.AuthToken{Key: key}).
		FirstOrCreate(&token).Error
	if err == nil {
		return &token, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = t.Db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
		if err == nil {
			return &token, nil
		}
	}
	return nil, err
}

func (t *Tokens) FindByKey(ctx context.Context, key string) (*models.AuthToken, error) {
	token, err := t.Repo.FindByWhere(ctx, "token_key = ?", key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return token, err
}

func (t *Tokens) DeleteByKey(ctx context.Context, key string) error {
	return t.Db.WithContext(ctx).Where("token_key = ?", key).Delete(&models.AuthToken{}).Error
}
