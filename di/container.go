package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"dayout-server/api"
	"dayout-server/api/groq"
	"dayout-server/api/openroute"
	"dayout-server/config"
	redisdao "dayout-server/dao/redis"
	"dayout-server/db"
	"dayout-server/server"
	"dayout-server/server/handlers"
	services "dayout-server/service"
	"dayout-server/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient      db.RedisClient
	VenueDao         *redisdao.RedisVenueDAO
	PlanSessionDao   *redisdao.RedisPlanSessionDAO
	OpenRouteAPI     openroute.OpenRouteAPI
	GroqAPI          groq.GroqAPI
	RouteService     *services.RouteService
	GeocodeService   *services.GeocodeService
	ItineraryScorer  *services.ItineraryScorer
	BatchRanker      *services.BatchRanker
	ItineraryService *services.ItineraryService
	MuxRouter        *mux.Router
	Router           *server.Router
	DayOutHttpServer *server.DayOutHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	venueDao := redisdao.NewRedisVenueDAO(redisClient)
	planSessionDao := redisdao.NewRedisPlanSessionDAO(redisClient)

	// Initialize provider clients - mocks outside prod
	var orsClient openroute.OpenRouteAPI
	var groqClient groq.GroqAPI
	if env != "prod" {
		orsClient = openroute.NewOpenRouteApiClientMock()
		groqClient = groq.NewGroqApiClientMock()
		log.Printf("Using mock provider clients")

		seedVenueCatalog(venueDao)
	} else {
		log.Printf("Using prod provider clients")
		ors := openroute.NewOpenRouteApiClient(api.NewHTTPClient(config.OPENROUTE_ENDPOINT_BASE))
		ors.SetCredentials(config.OpenRouteAPIKey())
		orsClient = ors

		gq := groq.NewGroqApiClient(api.NewHTTPClient(config.GROQ_ENDPOINT_BASE_V1))
		gq.SetCredentials(config.GroqAPIKey())
		groqClient = gq
	}

	// Initialize service layer
	routeService := services.NewRouteService(orsClient)
	geocodeService := services.NewGeocodeService(orsClient)
	promptCompiler := services.NewPromptCompiler()
	itineraryScorer := services.NewItineraryScorer(groqClient, promptCompiler, config.GroqModel())
	batchRanker := services.NewBatchRanker(itineraryScorer)
	itineraryService := services.NewItineraryService(venueDao, planSessionDao, routeService, batchRanker)

	// Initialize handlers
	itineraryHandler := handlers.NewItineraryHandler(itineraryService, routeService)
	metadataHandler := handlers.NewMetadataHandler()
	geocodeHandler := handlers.NewGeocodeHandler(geocodeService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(itineraryHandler, metadataHandler, geocodeHandler, muxRouter)

	// initialize day out server
	dayOutHttpServer := server.NewDayOutHttpServer(router, muxRouter)

	return &Container{
		RedisClient:      redisClient,
		VenueDao:         venueDao,
		PlanSessionDao:   planSessionDao,
		OpenRouteAPI:     orsClient,
		GroqAPI:          groqClient,
		RouteService:     routeService,
		GeocodeService:   geocodeService,
		ItineraryScorer:  itineraryScorer,
		BatchRanker:      batchRanker,
		ItineraryService: itineraryService,
		MuxRouter:        muxRouter,
		Router:           router,
		DayOutHttpServer: dayOutHttpServer,
	}
}

// seedVenueCatalog loads the fixture venue catalog into the venue DAO so the
// dev environment can plan itineraries without a real catalog.
func seedVenueCatalog(venueDao *redisdao.RedisVenueDAO) {
	venues, err := util.ReadVenuesCatalogFromJSON(config.GetResourcePath(config.VENUES_CATALOG_RESOURCE))
	if err != nil {
		log.Printf("Could not read venues catalog fixture: %v", err)
		return
	}
	for _, v := range venues {
		if err := venueDao.UpsertVenue(v); err != nil {
			log.Printf("Failed to seed venue %s: %v", v.VenueID, err)
		}
	}
	log.Printf("Seeded %d venues from fixture catalog", len(venues))
}
