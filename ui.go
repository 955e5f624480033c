package main

import (
	_ "embed"
	"github.com/gin-gonic/gin"
	"net/http"
	"os"
)

const (
	MatrixHTMLPath = "./ui/matrix.html"
)

//go:embed ui/matrix.html
var MatrixHTML string

func SetupUI(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		if stat, err := os.Stat(MatrixHTMLPath); err == nil && !stat.IsDir() {
			c.File(MatrixHTMLPath)
		} else {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(MatrixHTML))
		}
	})
}
