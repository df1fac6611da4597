package main

import (
	"github.com/Sgonchar89/foodgram-project/config"
	"github.com/Sgonchar89/foodgram-project/routes"
	"github.com/Sgonchar89/foodgram-project/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()
	utils.InitSES()
	r := routes.SetupRouter()
	r.Run(":8080")
}
