/* main.go
 * The "main" method for running the bot. Configuration is read from the environment (or a .env file), see
 * config/config.go for the keys
 * Usage: go run main.go
 */

package main

import (
	"valorant-bot/api/api"
	"valorant-bot/api/session"
	"valorant-bot/api/store"
	"valorant-bot/bot"
	"valorant-bot/config"
	"valorant-bot/logger"
	"valorant-bot/web"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		config.Module,
		logger.Module,
		session.Module,
		store.Module,
		api.Module,
		bot.Module,
		web.Module,
	).Run()
}
