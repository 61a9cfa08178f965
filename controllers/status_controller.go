package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatusController serves operational endpoints: the running banner,
// database diagnostics and the collection listing for admin tooling.
type StatusController struct {
	db *mongo.Database
}

func NewStatusController(db *mongo.Database) *StatusController {
	return &StatusController{db: db}
}

// Root confirms the service is up.
// GET /
func (sc *StatusController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sanctuary Builder Backend is running"})
}

// Status reports database connectivity and a sample of collections.
// GET /status
func (sc *StatusController) Status(c *gin.Context) {
	resp := gin.H{
		"backend":  "running",
		"database": "not connected",
	}

	pingCtx, pingCancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer pingCancel()

	if err := sc.db.Client().Ping(pingCtx, nil); err != nil {
		resp["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	resp["database"] = "connected"
	resp["database_name"] = sc.db.Name()

	if names, err := sc.db.ListCollectionNames(pingCtx, bson.M{}); err == nil {
		if len(names) > 10 {
			names = names[:10]
		}
		resp["collections"] = names
	}

	c.JSON(http.StatusOK, resp)
}

// Schema lists the collections this service owns.
// GET /schema
func (sc *StatusController) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": repository.CollectionNames()})
}
