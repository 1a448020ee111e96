package domain

import "time"

type UserStats struct {
	ContentViews   int64 `json:"content_views"`
	TotalTips      int64 `json:"total_tips"`
	TotalPurchases int64 `json:"total_purchases"`
}

// User is a wallet-identified account. Address is always stored lowercased.
type User struct {
	Address    string    `json:"address"`
	Username   string    `json:"username,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	IsCreator  bool      `json:"is_creator"`
	IsVerified bool      `json:"is_verified"`
	Stats      UserStats `json:"stats"`
	JoinedAt   time.Time `json:"joined_at"`
}
