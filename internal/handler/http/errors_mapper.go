package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/service"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/internal/utils"
	"github.com/MKhiriev/trustme/internal/validators"
)

type errorReply struct {
	status  int
	message string
}

// errorStatusTable is checked in order, so more specific errors come before
// the ones that wrap them.
var errorStatusTable = []struct {
	target error
	reply  errorReply
}{
	{service.ErrValidationNoUserID, errorReply{http.StatusUnauthorized, app.MsgUnauthenticated}},
	{validators.ErrNoFieldsToUpdate, errorReply{http.StatusBadRequest, app.MsgNoFieldsToUpdate}},
	{service.ErrInvalidDataProvided, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidJSON, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidCredentialID, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrInvalidCredentials, errorReply{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrTwoFactorRequired, errorReply{http.StatusUnauthorized, app.MsgTwoFactorRequired}},
	{service.ErrUnauthenticated, errorReply{http.StatusUnauthorized, app.MsgUnauthenticated}},
	{service.ErrTokenExpired, errorReply{http.StatusUnauthorized, app.MsgUnauthenticated}},
	{service.ErrInvalidSignature, errorReply{http.StatusUnauthorized, app.MsgUnauthenticated}},

	{service.ErrUsernameTaken, errorReply{http.StatusConflict, app.MsgUsernameTaken}},
	{store.ErrUsernameAlreadyExists, errorReply{http.StatusConflict, app.MsgUsernameTaken}},

	{service.ErrAlreadyEnabled, errorReply{http.StatusConflict, app.MsgTwoFactorAlreadyEnabled}},
	{service.ErrNotConfigured, errorReply{http.StatusBadRequest, app.MsgTwoFactorNotConfigured}},
	{service.ErrNotEnabled, errorReply{http.StatusBadRequest, app.MsgTwoFactorNotEnabled}},
	{service.ErrInvalidCode, errorReply{http.StatusBadRequest, app.MsgInvalidCode}},

	{store.ErrCredentialNotFound, errorReply{http.StatusNotFound, app.MsgCredentialNotFound}},
}

func replyFromError(err error) errorReply {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.reply
		}
	}
	return errorReply{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError replies with the status and message mapped from err. Server
// faults are logged at error level, client faults at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	reply := replyFromError(err)

	log := logger.FromRequest(r)
	if reply.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", reply.status).Msg(msg)
	}

	utils.WriteError(w, reply.message, reply.status)
}
