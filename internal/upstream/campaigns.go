package upstream

import (
    "context"
    "net/url"

    "github.com/d60-Lab/wing-feed/internal/model"
)

type CampaignClient interface {
    // ApprovedForWing 仅返回已审批通过的活动；审批流程属于上游，不在引擎范围内
    ApprovedForWing(ctx context.Context, wingID string) ([]model.Campaign, error)
}

type campaignClient struct {
    rest *REST
}

func NewCampaignClient(rest *REST) CampaignClient { return &campaignClient{rest: rest} }

func (c *campaignClient) ApprovedForWing(ctx context.Context, wingID string) ([]model.Campaign, error) {
    var out []model.Campaign
    err := c.rest.getJSON(ctx, "/api/v1/wings/"+url.PathEscape(wingID)+"/campaigns?status=approved", &out)
    return out, err
}
