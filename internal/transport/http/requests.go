package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"creditlens/internal/dataset"
	apierrors "creditlens/internal/errors"
)

var validate = validator.New()

// FilterRequest carries the filter query parameters of a data endpoint.
// Zero values mean "no restriction" for the respective field.
type FilterRequest struct {
	AgeMin   int      `validate:"omitempty,min=0,max=150"`
	AgeMax   int      `validate:"omitempty,min=0,max=150"`
	Sexes    []string `validate:"dive,required"`
	Housing  []string `validate:"dive,required"`
	Purposes []string `validate:"dive,required"`
}

// parseFilterRequest decodes and validates the filter query parameters
func parseFilterRequest(r *http.Request) (FilterRequest, error) {
	q := r.URL.Query()

	req := FilterRequest{
		Sexes:    q["sex"],
		Housing:  q["housing"],
		Purposes: q["purpose"],
	}

	var err error
	if req.AgeMin, err = parseIntParam(q.Get("age_min"), "age_min"); err != nil {
		return FilterRequest{}, err
	}
	if req.AgeMax, err = parseIntParam(q.Get("age_max"), "age_max"); err != nil {
		return FilterRequest{}, err
	}

	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			field := verrs[0].Field()
			return FilterRequest{}, apierrors.ErrValidation(field, fmt.Sprintf("invalid value for %s", field))
		}
		return FilterRequest{}, apierrors.InvalidRequestWithError(err)
	}

	if req.AgeMax > 0 && req.AgeMin > req.AgeMax {
		return FilterRequest{}, apierrors.ErrValidation("age_max", "age_max must be greater than or equal to age_min")
	}

	return req, nil
}

// Filter converts the request into the dataset filter form
func (req FilterRequest) Filter() dataset.Filter {
	return dataset.Filter{
		AgeMin:   req.AgeMin,
		AgeMax:   req.AgeMax,
		Sexes:    req.Sexes,
		Housing:  req.Housing,
		Purposes: req.Purposes,
	}
}

func parseIntParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierrors.ErrValidation(name, fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}
