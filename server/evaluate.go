package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/zephyrtronium/scicalc"
)

// EvaluateParams contains the bound parameters for the /evaluate endpoint.
type EvaluateParams struct {
	Expression string `form:"expression" json:"expression" msgpack:"expression"`
}

// EvaluateResult is the /evaluate response.
type EvaluateResult struct {
	Expression string  `json:"expression" msgpack:"expression"`
	Result     float64 `json:"result" msgpack:"result"`
	Display    string  `json:"display" msgpack:"display"`
}

// DoEvaluate handles the /evaluate endpoint. The expression comes from the
// query, a form, or a JSON body.
func (s *Server) DoEvaluate(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	var params EvaluateParams
	if ctx.Request.Method == http.MethodPost && ctx.ContentType() == binding.MIMEJSON {
		if err := binding.JSON.Bind(ctx.Request, &params); err != nil {
			panic(NewError(http.StatusBadRequest, err.Error()).
				WithDetails("failed to parse request JSON parameters"))
		}
	}
	if err := binding.Form.Bind(ctx.Request, &params); err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("failed to parse request parameters"))
	}

	r, err := scicalc.EvaluateExpression(params.Expression, s.opts...)
	if err != nil {
		panic(evaluationError(err))
	}

	writeResponse(ctx, http.StatusOK, EvaluateResult{
		Expression: params.Expression,
		Result:     r,
		Display:    scicalc.FormatDisplay(r),
	})
}

// evaluationError reports a failed evaluation with its cause in the details.
func evaluationError(err error) *Error {
	res := NewError(http.StatusUnprocessableEntity, err.Error())
	if cause := errors.Unwrap(err); cause != nil {
		res.WithDetails(cause.Error())
	}
	return res
}

// ValidateResult is the /validate response.
type ValidateResult struct {
	Expression string `json:"expression" msgpack:"expression"`
	Valid      bool   `json:"valid" msgpack:"valid"`
}

// DoValidate handles the /validate endpoint: reports whether the expression's
// parentheses are balanced.
func (s *Server) DoValidate(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	var params EvaluateParams
	if err := binding.Form.Bind(ctx.Request, &params); err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("failed to parse request parameters"))
	}

	writeResponse(ctx, http.StatusOK, ValidateResult{
		Expression: params.Expression,
		Valid:      scicalc.ValidateParentheses(params.Expression),
	})
}

// FuncParams contains the bound parameters for the /func endpoint.
type FuncParams struct {
	Value   *float64 `form:"value"`
	Degrees bool     `form:"degrees"`
}

// FuncResult is the /func and /format response.
type FuncResult struct {
	Result  float64 `json:"result" msgpack:"result"`
	Display string  `json:"display" msgpack:"display"`
}

// DoFunc handles the /func/:name endpoint.
func (s *Server) DoFunc(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	name := ctx.Param("name")
	f := scicalc.LookupFunc(name)
	if f == nil {
		panic(NewError(http.StatusNotFound, (&scicalc.FuncError{Name: name}).Error()))
	}

	params := FuncParams{Degrees: s.Config.Degrees}
	if err := binding.Form.Bind(ctx.Request, &params); err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("failed to parse request parameters"))
	}
	if params.Value == nil {
		panic(NewError(http.StatusBadRequest, "no value provided"))
	}
	if !finite(*params.Value) {
		panic(NewError(http.StatusBadRequest, "value is not finite"))
	}

	r, err := f(*params.Value, params.Degrees)
	if err != nil {
		var de *scicalc.DomainError
		if errors.As(err, &de) {
			panic(NewError(http.StatusUnprocessableEntity, scicalc.ErrorText).WithDetails(err.Error()))
		}
		panic(err)
	}
	if !finite(r) {
		panic(NewError(http.StatusUnprocessableEntity, scicalc.ErrorText).
			WithDetails(name + " result is not finite"))
	}

	writeResponse(ctx, http.StatusOK, FuncResult{Result: r, Display: scicalc.FormatDisplay(r)})
}

// DoFormat handles the /format endpoint: formats a number for the display.
func (s *Server) DoFormat(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	text := ctx.Query("value")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("value is not a number"))
	}
	if !finite(v) {
		panic(NewError(http.StatusBadRequest, "value is not finite"))
	}

	writeResponse(ctx, http.StatusOK, FuncResult{Result: v, Display: scicalc.FormatDisplay(v)})
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
