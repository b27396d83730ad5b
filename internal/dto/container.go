package dto

import (
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ContainerIDsQuery selects containers by a comma separated id list.
type ContainerIDsQuery struct {
	ContainerIDs string  `form:"containerIds" binding:"required"`
	Date         *string `form:"date" binding:"omitempty,epoch_ms"`
}

// ContainerTimelineQuery selects containers and the sample instants of their timeline.
type ContainerTimelineQuery struct {
	ContainerIDs string  `form:"containerIds" binding:"required"`
	StartDate    *string `form:"startDate" binding:"omitempty,epoch_ms"`
	EndDate      *string `form:"endDate" binding:"omitempty,epoch_ms"`
	Division     int     `form:"division" binding:"omitempty"`
}

// NetworthQuery optionally pins the valuation instant.
type NetworthQuery struct {
	Date *string `form:"date" binding:"omitempty,epoch_ms"`
}

// NetworthResponse is the owner's total worth in base currency.
type NetworthResponse struct {
	NetWorth string `json:"netWorth"`
	Date     string `json:"date"`
}

// ContainerBalancesResponse maps container ids to per-currency balances.
type ContainerBalancesResponse struct {
	Balances map[string]map[string]string `json:"balances"`
}

// ContainerWorthResponse maps container ids to worth in base currency.
type ContainerWorthResponse struct {
	Values map[string]string `json:"values"`
	Date   string            `json:"date"`
}

// TimelinePointResponse is one sample of one container.
type TimelinePointResponse struct {
	ContainerBalance map[string]string `json:"containerBalance"`
	ContainerWorth   string            `json:"containerWorth"`
}

// ContainerTimelineResponse maps container ids to samples keyed by epoch milliseconds.
type ContainerTimelineResponse struct {
	TimelineAndValues map[string]map[string]TimelinePointResponse `json:"timelineAndValues"`
}

// ToContainerBalancesResponse converts per-container balances.
func ToContainerBalancesResponse(balances map[string]map[string]decimal.Decimal) ContainerBalancesResponse {
	res := ContainerBalancesResponse{Balances: make(map[string]map[string]string, len(balances))}
	for id, bal := range balances {
		inner := make(map[string]string, len(bal))
		for cur, v := range bal {
			inner[cur] = v.String()
		}
		res.Balances[id] = inner
	}
	return res
}

// ToContainerTimelineResponse converts per-container timelines.
func ToContainerTimelineResponse(timeline domain.ContainerTimeline) ContainerTimelineResponse {
	res := ContainerTimelineResponse{TimelineAndValues: make(map[string]map[string]TimelinePointResponse, len(timeline))}
	for id, points := range timeline {
		inner := make(map[string]TimelinePointResponse, len(points))
		for _, p := range points {
			balance := make(map[string]string, len(p.Balance))
			for cur, v := range p.Balance {
				balance[cur] = v.String()
			}
			inner[EpochString(p.At)] = TimelinePointResponse{ContainerBalance: balance, ContainerWorth: p.Worth.String()}
		}
		res.TimelineAndValues[id] = inner
	}
	return res
}
