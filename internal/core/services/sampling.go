package services

import (
	"strconv"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// sampleInstants returns the Division evenly spaced instants of the query,
// computed in whole milliseconds: start + (end-start)*i/(division-1). The
// first instant is the start and the last is exactly the end. A positive
// maxDivision caps the division.
func sampleInstants(q domain.HistoryQuery, maxDivision int) ([]time.Time, error) {
	if q.Division < 2 {
		return nil, &apperrors.ConstantComparisonError{Name: "division", Operator: ">=", Constant: "2", Actual: strconv.Itoa(q.Division)}
	}
	if maxDivision > 0 && q.Division > maxDivision {
		return nil, &apperrors.ConstantComparisonError{Name: "division", Operator: "<=", Constant: strconv.Itoa(maxDivision), Actual: strconv.Itoa(q.Division)}
	}
	start, end := q.StartDate.UnixMilli(), q.EndDate.UnixMilli()
	if start >= end {
		return nil, &apperrors.ArgsComparisonError{LeftName: "startDate", Operator: "<", RightName: "endDate"}
	}

	span := end - start
	steps := int64(q.Division - 1)
	out := make([]time.Time, q.Division)
	for i := range out {
		out[i] = time.UnixMilli(start + span*int64(i)/steps).UTC()
	}
	return out, nil
}
