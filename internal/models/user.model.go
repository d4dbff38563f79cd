package models

type User struct {
	BaseUUIDModel
	// Subject is the hosted-auth identity (JWT `sub` claim). Users are
	// created lazily on first authenticated request.
	Subject string  `gorm:"type:varchar(128);uniqueIndex;not null" json:"subject"`
	Email   *string `gorm:"type:varchar(255)"                      json:"email,omitempty"`
}

// UserClaims are the fields extracted from the hosted-auth access token.
type UserClaims struct {
	Subject string
	Email   string
}
