package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ugorji/go/codec"
)

// supported response types
const (
	MIME_JSON     = "application/json"
	MIME_MSGPACK  = "application/msgpack"
	MIME_XMSGPACK = "application/x-msgpack"
)

var msgpackHandle = new(codec.MsgpackHandle)

// get list of supported MIME types, JSON first
func supportedMimeTypes() []string {
	return []string{MIME_JSON, MIME_MSGPACK, MIME_XMSGPACK}
}

// writeResponse encodes the body as JSON or MSGPACK, depending on the
// Accept header. JSON is the default.
func writeResponse(ctx *gin.Context, status int, body interface{}) {
	accept := ctx.NegotiateFormat(supportedMimeTypes()...)
	switch accept {
	case MIME_MSGPACK, MIME_XMSGPACK:
		var buf []byte
		if err := codec.NewEncoderBytes(&buf, msgpackHandle).Encode(body); err != nil {
			log.WithError(err).Warnf("failed to encode MSGPACK response")
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctx.Data(status, accept, buf)

	default:
		ctx.IndentedJSON(status, body)
	}
}
