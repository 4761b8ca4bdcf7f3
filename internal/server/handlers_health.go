package server

import "github.com/gin-gonic/gin"

func (s *Server) handleHealth(c *gin.Context) {
	c.String(200, "Ok")
}
