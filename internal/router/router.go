package router

import (
	"chantier-go/internal/config"
	"chantier-go/internal/handler"
	"chantier-go/internal/middleware"
	"chantier-go/internal/models"
	"chantier-go/internal/service"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRouter assemble les middlewares, handlers et routes de l'API
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	store storage.Store,
	authService *service.AuthService,
) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "API de suivi de chantiers",
			"version": "1.0.0",
		})
	})

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(store)
	chantierHandler := handler.NewChantierHandler(store)
	lotHandler := handler.NewLotHandler(store)
	tacheHandler := handler.NewTacheHandler(store)
	documentHandler := handler.NewDocumentHandler(store)
	ressourceHandler := handler.NewRessourceHandler(store)
	equipeHandler := handler.NewEquipeHandler(store)
	parametreHandler := handler.NewParametreHandler(store)
	feedHandler := handler.NewFeedHandler(store)
	dashboardHandler := handler.NewDashboardHandler(store)

	api := r.Group("/api")
	{
		// routes publiques
		api.POST("/login", authHandler.Login)

		// routes authentifiées
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			authorized.GET("/me", authHandler.GetMe)
			authorized.POST("/logout", authHandler.Logout)

			// chantiers
			authorized.GET("/chantiers", chantierHandler.List)
			authorized.POST("/chantiers", chantierHandler.Create)
			authorized.GET("/chantiers/:id", chantierHandler.Get)
			authorized.PUT("/chantiers/:id", chantierHandler.Update)
			authorized.DELETE("/chantiers/:id", chantierHandler.Delete)
			authorized.GET("/chantiers/:id/stats", chantierHandler.Stats)
			authorized.GET("/chantiers/:id/lots", chantierHandler.ListLots)
			authorized.GET("/chantiers/:id/taches", chantierHandler.ListTaches)
			authorized.GET("/chantiers/:id/activites", chantierHandler.Activites)

			// lots
			authorized.POST("/lots", lotHandler.Create)
			authorized.GET("/lots/:id", lotHandler.Get)
			authorized.PUT("/lots/:id", lotHandler.Update)
			authorized.DELETE("/lots/:id", lotHandler.Delete)
			authorized.GET("/lots/:id/stats", lotHandler.Stats)
			authorized.GET("/lots/:id/taches", lotHandler.ListTaches)
			authorized.GET("/lots/:id/pilotes", lotHandler.ListPilotes)
			authorized.POST("/lots/:id/pilotes", lotHandler.AddPilote)
			authorized.DELETE("/lots/:id/pilotes/:user_id", lotHandler.RemovePilote)

			// tâches
			authorized.GET("/taches", tacheHandler.List)
			authorized.POST("/taches", tacheHandler.Create)
			authorized.GET("/taches/:id", tacheHandler.Get)
			authorized.PUT("/taches/:id", tacheHandler.Update)
			authorized.DELETE("/taches/:id", tacheHandler.Delete)
			authorized.GET("/taches/:id/intervenants", tacheHandler.ListIntervenants)
			authorized.POST("/taches/:id/intervenants", tacheHandler.AddIntervenant)
			authorized.DELETE("/taches/:id/intervenants/:user_id", tacheHandler.RemoveIntervenant)
			authorized.GET("/taches/:id/pieces_jointes", tacheHandler.ListPiecesJointes)
			authorized.GET("/taches/:id/activites", tacheHandler.Activites)

			// pièces jointes et révisions
			authorized.POST("/pieces_jointes", documentHandler.Create)
			authorized.GET("/pieces_jointes/:id", documentHandler.Get)
			authorized.DELETE("/pieces_jointes/:id", documentHandler.Delete)
			authorized.GET("/pieces_jointes/:id/revisions", documentHandler.ListRevisions)
			authorized.POST("/pieces_jointes/:id/revisions", documentHandler.CreateRevision)

			// ressources, affectations, disponibilités, planning
			authorized.GET("/ressources", ressourceHandler.List)
			authorized.POST("/ressources", ressourceHandler.Create)
			authorized.GET("/ressources/:id", ressourceHandler.Get)
			authorized.PUT("/ressources/:id", ressourceHandler.Update)
			authorized.DELETE("/ressources/:id", ressourceHandler.Delete)
			authorized.GET("/ressources/:id/affectations", ressourceHandler.ListAffectations)
			authorized.GET("/ressources/:id/disponibilites", ressourceHandler.ListDisponibilites)
			authorized.POST("/affectations", ressourceHandler.CreateAffectation)
			authorized.DELETE("/affectations/:id", ressourceHandler.DeleteAffectation)
			authorized.POST("/disponibilites", ressourceHandler.CreateDisponibilite)
			authorized.DELETE("/disponibilites/:id", ressourceHandler.DeleteDisponibilite)
			authorized.GET("/planning", ressourceHandler.Planning)

			// équipes
			authorized.GET("/equipes", equipeHandler.List)
			authorized.POST("/equipes", equipeHandler.Create)
			authorized.GET("/equipes/:id", equipeHandler.Get)
			authorized.PUT("/equipes/:id", equipeHandler.Update)
			authorized.DELETE("/equipes/:id", equipeHandler.Delete)
			authorized.GET("/equipes/:id/membres", equipeHandler.ListMembres)
			authorized.POST("/equipes/:id/membres", equipeHandler.AddMembre)
			authorized.DELETE("/equipes/:id/membres/:user_id", equipeHandler.RemoveMembre)

			// paramètres en lecture
			authorized.GET("/parametres", parametreHandler.List)
			authorized.GET("/parametres/:cle", parametreHandler.Get)

			// journal d'activité et notifications
			authorized.GET("/activites", feedHandler.ListActivites)
			authorized.GET("/notifications", feedHandler.ListNotifications)
			authorized.PUT("/notifications/lu", feedHandler.MarkAllRead)
			authorized.PUT("/notifications/:id/lu", feedHandler.MarkRead)

			// tableau de bord
			authorized.GET("/dashboard/stats", dashboardHandler.Stats)

			// routes réservées au directeur
			adminGroup := authorized.Group("/admin")
			adminGroup.Use(middleware.RequireRole(models.RoleDirecteur))
			{
				adminGroup.GET("/users", userHandler.List)
				adminGroup.POST("/users", userHandler.Create)
				adminGroup.GET("/users/:id", userHandler.Get)
				adminGroup.PUT("/users/:id", userHandler.Update)
				adminGroup.DELETE("/users/:id", userHandler.Delete)

				adminGroup.PUT("/parametres", parametreHandler.Set)
				adminGroup.DELETE("/parametres/:cle", parametreHandler.Delete)
			}
		}
	}

	return r
}
