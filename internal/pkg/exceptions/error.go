package exceptions

import (
	"cura-booking-service/internal/pkg/constvars"
	"fmt"
	"runtime"
)

type CustomError struct {
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the location of whoever called the constructor
// variable, not the constructor itself.
func BuildNewCustomError(err error, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err == nil {
		return &CustomError{
			ClientMessage: clientMessage,
			DevMessage:    devMessage,
			Location:      location,
		}
	}
	return &CustomError{
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      location,
		Err:           err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
