package carbon

import (
	"context"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/repository/rest"
)

type REST struct {
	client *rest.Client
}

// CarbonRepository estimates the shipping emissions of a parcel.
type CarbonRepository interface {
	Estimate(ctx context.Context, query *model.CarbonEstimateQuery) (float64, error)
}

func NewCarbonRepository(client *rest.Client) CarbonRepository {
	return &REST{client: client}
}

func (s *REST) Estimate(ctx context.Context, query *model.CarbonEstimateQuery) (float64, error) {
	params := url.Values{}
	params.Set("origin_lat", formatFloat(query.Origin.Lat))
	params.Set("origin_lon", formatFloat(query.Origin.Lon))
	params.Set("destination_lat", formatFloat(query.Destination.Lat))
	params.Set("destination_lon", formatFloat(query.Destination.Lon))
	params.Set("weight", formatFloat(query.Weight))

	var co2 float64
	if err := s.client.Call(ctx, rest.Request{Path: "/api/v2/carbon", Query: params}, &co2); err != nil {
		return 0, err
	}
	return co2, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
