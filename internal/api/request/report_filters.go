package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/apperrors"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/model"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/service"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/validation"
)

// MaxTop caps the top query parameter.
const MaxTop = 100

// ParseReportFilters extracts and validates report filters from query parameters.
// All parameters are optional.
//
// Validation rules:
//   - status: Comma-separated status names, matched case-insensitively
//   - min_roe: Number, in percent
//   - min_dividend: Number, in percent
//   - top: Integer between 1 and MaxTop
//
// Every invalid parameter is reported. The error wraps apperrors.ErrInvalidFilter
// and a *validation.Error holding one message per field.
func ParseReportFilters(statusParam, minROEParam, minDividendParam, topParam string) (service.ReportFilter, error) {
	var filter service.ReportFilter
	errs := make(map[string]string)

	if statusParam != "" {
		for _, name := range strings.Split(statusParam, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			status, ok := model.ParseStatus(name)
			if !ok {
				errs["status"] = fmt.Sprintf("unknown status %q", strings.TrimSpace(name))
				break
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	if minROEParam != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(minROEParam), 64)
		if err != nil {
			errs["min_roe"] = "must be a number"
		}
		filter.MinROE = v
	}

	if minDividendParam != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(minDividendParam), 64)
		if err != nil {
			errs["min_dividend"] = "must be a number"
		}
		filter.MinDividend = v
	}

	if topParam != "" {
		n, err := strconv.Atoi(strings.TrimSpace(topParam))
		switch {
		case err != nil:
			errs["top"] = "must be an integer"
		case n < 1 || n > MaxTop:
			errs["top"] = fmt.Sprintf("must be between 1 and %d", MaxTop)
		default:
			filter.Top = n
		}
	}

	if len(errs) > 0 {
		return service.ReportFilter{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidFilter, &validation.Error{Fields: errs})
	}
	return filter, nil
}

// ParseWait reads the wait query parameter of a refresh request. It defaults to true.
func ParseWait(waitParam string) (bool, error) {
	if waitParam == "" {
		return true, nil
	}
	wait, err := strconv.ParseBool(waitParam)
	if err != nil {
		return false, fmt.Errorf("%w: wait must be true or false", apperrors.ErrInvalidFilter)
	}
	return wait, nil
}
