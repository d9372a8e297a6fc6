package main

import (
	"encoding/json"
	"flag"
	"os"
	"tatzy/config"
	"tatzy/infras/jwt"
	"tatzy/shared/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// token issues a dispatcher access token for the admin routes.
//
//	go run ./cmd/token -email dispatch@tatzy.ca -role dispatcher
func main() {
	logger.InitLogger()

	dispatcherID := flag.String("id", "", "dispatcher id, random when empty")
	email := flag.String("email", "", "dispatcher email")
	role := flag.String("role", "dispatcher", "dispatcher role")
	flag.Parse()

	if *email == "" {
		log.Fatal().Msg("-email is required")
	}

	if *dispatcherID == "" {
		*dispatcherID = uuid.NewString()
	}

	token, err := jwt.New(config.Get()).GenerateAccessToken(*dispatcherID, *email, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate access token")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(token); err != nil {
		log.Fatal().Err(err).Msg("Failed to print access token")
	}
}
