package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hance08/tally/internal/service"
)

const insufficientFundsCause = "User does not have sufficient funds"

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Cause string `json:"cause,omitempty"`
	Code  int    `json:"code"`
}

func statusFor(kind service.ErrorKind) int {
	switch kind {
	case service.KindNotFound:
		return fiber.StatusNotFound
	case service.KindInsufficientFunds, service.KindInvalid:
		return fiber.StatusBadRequest
	case service.KindTimeout:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// errorBody renders a service error for the caller. Storage failures keep
// their detail out of the response.
func errorBody(err error) errorResponse {
	kind := service.KindOf(err)
	resp := errorResponse{Kind: kind.String(), Code: statusFor(kind)}

	switch kind {
	case service.KindNotFound:
		resp.Error = service.ErrAccountNotFound.Error()
		if errors.Is(err, service.ErrTransactionNotFound) {
			resp.Error = service.ErrTransactionNotFound.Error()
		}
		resp.Cause = err.Error()
	case service.KindInsufficientFunds:
		resp.Error = err.Error()
		resp.Cause = insufficientFundsCause
	case service.KindInvalid, service.KindTimeout:
		resp.Error = err.Error()
	default:
		resp.Error = service.ErrStorage.Error()
	}
	return resp
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	resp := errorBody(err)
	if resp.Code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", s.logger.Args("path", c.Path(), "error", err.Error()))
	}
	return c.Status(resp.Code).JSON(resp)
}

// errorHandler answers errors that escape a handler: bad requests raised as
// *fiber.Error, unknown routes and recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error: service.ErrStorage.Error(),
			Kind:  service.KindStorage.String(),
			Code:  fiber.StatusInternalServerError,
		})
	}

	kind := "request_error"
	switch fe.Code {
	case fiber.StatusNotFound:
		kind = service.KindNotFound.String()
	case fiber.StatusBadRequest:
		kind = "malformed_request"
	}
	return c.Status(fe.Code).JSON(errorResponse{Error: fe.Message, Kind: kind, Code: fe.Code})
}
