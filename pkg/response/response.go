package response

import "github.com/gin-gonic/gin"

// Flat JSON shapes the storefront frontends depend on. The success flag plus
// either a payload or a human-readable reason is the whole contract.

// Token writes the signup/login success body.
func Token(c *gin.Context, token string) {
	c.JSON(200, gin.H{"success": true, "token": token})
}

// Fail writes a business-logic failure with a reason under "errors".
func Fail(c *gin.Context, status int, reason string) {
	c.JSON(status, gin.H{"success": false, "errors": reason})
}

// Message writes an acknowledgment body.
func Message(c *gin.Context, msg string) {
	c.JSON(200, gin.H{"message": msg})
}

// Err writes a terminal error with a reason under "error". Used by the auth
// gate and cart endpoints.
func Err(c *gin.Context, status int, reason string) {
	c.JSON(status, gin.H{"error": reason})
}

// AbortErr writes an error body and terminates the handler chain.
func AbortErr(c *gin.Context, status int, reason string) {
	c.AbortWithStatusJSON(status, gin.H{"error": reason})
}
