// Package main Game Economy API
//
// Game Economy is the backend for a small multiplayer game: it manages
// player stats and money, the consumable item catalog, per-player
// inventories, and the transactional economy operations built on top of
// them (item grants, item consumption and gacha draws).
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	"github.com/kakemizuh/gameeconomy/internal/app"
)

// @title Game Economy API Service
// @version 1.0
// @description Game Economy manages player stats, item inventories and gacha draws for a small multiplayer game.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
