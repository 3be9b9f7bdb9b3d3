package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/careercompass/backend/auth"
	"github.com/careercompass/backend/mcp"
)

// Routes bundles the handlers served under the API prefix
type Routes struct {
	JWT      *auth.JWTService
	Auth     *AuthHandler
	Analysis *AnalysisHandler
	Resume   *ResumeHandler
	MCP      *mcp.Server
}

// Register mounts every API route on the given group
func (r Routes) Register(api *gin.RouterGroup) {
	// Auth endpoints (public)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.Auth.Register)
		authGroup.POST("/login", r.Auth.Login)
		authGroup.POST("/google", r.Auth.GoogleLogin)
	}

	protected := api.Group("")
	protected.Use(auth.AuthMiddleware(r.JWT))
	{
		protected.GET("/auth/me", r.Auth.Me)

		protected.POST("/analyze", r.Analysis.Analyze)
		protected.POST("/chat", r.Analysis.Chat)
		protected.GET("/analysis/:id", r.Analysis.GetAnalysis)
		protected.DELETE("/analysis/:id", r.Analysis.DeleteAnalysis)
		protected.GET("/history", r.Analysis.History)

		protected.POST("/resume/extract", r.Resume.Extract)

		// MCP endpoints for external AI agents
		if r.MCP != nil {
			r.MCP.RegisterRoutes(protected)
		}
	}
}
