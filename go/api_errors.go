package cornerstoreserver

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/cornerstore/cornerstore-api/internal/domains/catalog/application"
	catalogports "github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
	salesapp "github.com/cornerstore/cornerstore-api/internal/domains/sales/application"
	salesports "github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
	staffapp "github.com/cornerstore/cornerstore-api/internal/domains/staff/application"
	staffports "github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
	apierrors "github.com/cornerstore/cornerstore-api/internal/shared/errors"
)

// responder translates application and port errors into RFC 7807
// problem responses shared by every handler in this package.
var responder = apierrors.NewResponder(mapNotFound, mapInvalidInput)

func mapNotFound(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, staffports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, catalogports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, salesports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapInvalidInput(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, staffapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, salesapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		responder.BadRequest(c, "invalid "+name+" parameter: "+value)
		return 0, false
	}
	return id, true
}
