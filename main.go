package main

import (
	"github.com/ecstatic-morse/zmk/config"
	"github.com/ecstatic-morse/zmk/factory"
	"github.com/ecstatic-morse/zmk/kscan"
	"github.com/ecstatic-morse/zmk/kscan/matrix"
	"github.com/ecstatic-morse/zmk/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

var log = logger.New("[main]")
var verbose = logger.NewVerboseLogger("[main]")

func main() {
	conf, err := config.GetConfig()
	if err != nil {
		log.Fatalln("get config:", err)
	}

	src, err := factory.SourceFromConfig(conf)
	if err != nil {
		log.Fatalln("command source from config:", err)
	}
	defer func() {
		if src != nil {
			_ = src.Close()
		}
	}()

	state, renderer := factory.MatrixFromConfig(conf)
	hub := NewHub()

	var driver kscan.Driver
	if src != nil {
		driver, err = factory.KscanFromConfig(conf, src)
		if err != nil {
			log.Fatalln("kscan driver from config:", err)
		}
		defer func() {
			_ = driver.Close()
		}()

		err = driver.Configure(func(row, col int, pressed bool) {
			verbose.Println("event:", row, col, pressed)
			state.Apply(row, col, pressed)
			hub.Broadcast(kscan.Event{Row: row, Col: col, Pressed: pressed})
		})
		if err != nil {
			log.Fatalln("configure kscan driver:", err)
		}
	}

	if conf.Server.Addr != "" {
		go func() {
			err := Serve(conf, driver, state, renderer, hub)
			if err != nil {
				log.Fatalln("serve:", err)
			}
		}()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	log.Println("awaiting signal")
	sig := <-sigs
	log.Println("exiting with", sig)

	if driver != nil {
		_ = driver.Disable()
	}
}

func Serve(conf config.Config, driver kscan.Driver, state *matrix.State, renderer *matrix.Renderer, hub *Hub) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	if conf.Server.Cors {
		router.Use(cors.Default())
	}

	SetupUI(router)

	router.GET("/api/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, state.Snapshot())
	})

	router.GET("/api/matrix.png", func(c *gin.Context) {
		c.Header("Content-Type", "image/png")
		c.Status(http.StatusOK)
		err := renderer.EncodePNG(c.Writer)
		if err != nil {
			log.Println("encode matrix snapshot:", err)
		}
	})

	router.POST("/api/enable", func(c *gin.Context) {
		if driver == nil {
			c.String(http.StatusNotImplemented, "no command source configured")
			return
		}
		if err := driver.Enable(); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "ok")
	})

	router.POST("/api/disable", func(c *gin.Context) {
		if driver == nil {
			c.String(http.StatusNotImplemented, "no command source configured")
			return
		}
		if err := driver.Disable(); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "ok")
	})

	upgrader := websocket.Upgrader{}
	if conf.Server.Cors {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}

	router.GET("/events", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		hub.Handle(conn)
	})

	log.Println("listening on", conf.Server.Addr)
	return router.Run(conf.Server.Addr)
}
