package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/wallframe/internal/api"
	"github.com/youruser/wallframe/internal/frame"
)

func main() {
	font := frame.DefaultTypeface()
	if path := os.Getenv("WALLFRAME_FONT"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Fatal("read font: ", err)
		}
		font = b
	}

	r := gin.Default()
	api.RegisterRoutes(r, &api.Server{Font: font, Config: frame.DefaultConfig()})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
