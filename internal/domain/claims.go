package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = 1

// Claims é o conteúdo do token emitido no login do administrador
type Claims struct {
	Subject string `json:"sub_name"`
	RoleID  int    `json:"role_id"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Password string `json:"password"`
}
