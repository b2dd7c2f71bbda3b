package response

import "github.com/gin-gonic/gin"

// API messages
const (
	MsgRequestSent     = "connection request sent successfully"
	MsgConnected       = "connection established successfully"
	MsgPendingMutual   = "connection request sent back, waiting for mutual acceptance"
	MsgRequestRejected = "connection request rejected"
	MsgFetched         = "fetched successfully"
	MsgProfileUpdated  = "profile updated successfully"
	MsgPasswordChanged = "password changed successfully"
	MsgLoggedOut       = "logged out successfully"
)

// Success writes the standard success envelope. A nil data omits the field.
func Success(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// Error writes the standard error body.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
