package service

import (
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/wing-feed/internal/model"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func post(id string, offset time.Duration) model.Post {
    return model.Post{ID: id, AuthorID: "a-" + id, AuthorName: "Author " + id, Content: "content " + id, CreatedAt: base.Add(offset)}
}

func campaign(id string, offset time.Duration) model.Campaign {
    return model.Campaign{ID: id, CreatorID: "c-" + id, Title: "Campaign " + id, Description: "desc " + id, CreatedAt: base.Add(offset)}
}

func TestComposeOrderingAndCardinality(t *testing.T) {
    posts := NormalizePosts([]model.Post{post("p1", 3*time.Minute), post("p2", time.Minute)})
    campaigns := NormalizeCampaigns([]model.Campaign{campaign("c1", 2*time.Minute), campaign("c2", 4*time.Minute)})

    merged := Compose(posts, campaigns)
    require.Len(t, merged, 4)
    for i := 1; i < len(merged); i++ {
        assert.False(t, merged[i].CreatedAt.After(merged[i-1].CreatedAt), "createdAt must be non-increasing")
    }
    assert.Equal(t, "campaign:c2", merged[0].ID)
    assert.Equal(t, "p1", merged[1].ID)
    assert.Equal(t, "campaign:c1", merged[2].ID)
    assert.Equal(t, "p2", merged[3].ID)
}

func TestComposeTieBreakByIDDescending(t *testing.T) {
    a := post("aaa", 0)
    b := post("zzz", 0)
    merged := Compose(NormalizePosts([]model.Post{a, b}), nil)
    require.Len(t, merged, 2)
    assert.Equal(t, "zzz", merged[0].ID)
    assert.Equal(t, "aaa", merged[1].ID)
}

func TestNormalizeDropsMalformedRecords(t *testing.T) {
    posts := []model.Post{
        post("ok", 0),
        {ID: "", AuthorID: "a", CreatedAt: base},            // no id
        {ID: "x", AuthorID: "", CreatedAt: base},            // no author
        {ID: "y", AuthorID: "a", CreatedAt: time.Time{}},    // no timestamp
    }
    got := NormalizePosts(posts)
    require.Len(t, got, 1)
    assert.Equal(t, "ok", got[0].ID)

    campaigns := []model.Campaign{campaign("ok", 0), {ID: "", CreatorID: "c", CreatedAt: base}}
    assert.Len(t, NormalizeCampaigns(campaigns), 1)
}

func TestNormalizeCampaignShape(t *testing.T) {
    long := strings.Repeat("走", 200)
    c := campaign("c9", 0)
    c.Description = long
    c.Image = "https://img.example/c9.jpg"
    c.Joined = 7
    c.Capacity = 20

    got := NormalizeCampaigns([]model.Campaign{c})
    require.Len(t, got, 1)
    item := got[0]

    assert.Equal(t, "campaign:c9", item.ID, "campaign ids must be namespaced away from post ids")
    assert.Equal(t, model.KindCampaign, item.Kind)
    assert.Zero(t, item.ReactionCount)
    assert.Zero(t, item.CommentCount)
    assert.Equal(t, []string{"https://img.example/c9.jpg"}, item.Images)
    require.NotNil(t, item.CampaignRef)
    assert.Equal(t, "c9", item.CampaignRef.CampaignID)
    assert.Equal(t, 7, item.CampaignRef.Joined)

    assert.True(t, strings.HasPrefix(item.Content, "Campaign c9: "))
    assert.True(t, strings.HasSuffix(item.Content, "…"))
    summary := strings.TrimPrefix(item.Content, "Campaign c9: ")
    assert.Equal(t, 151, len([]rune(summary)), "150 runes plus ellipsis")
}

func TestCampaignSourceID(t *testing.T) {
    id, ok := CampaignSourceID("campaign:42")
    require.True(t, ok)
    assert.Equal(t, "42", id)

    _, ok = CampaignSourceID("42")
    assert.False(t, ok)
    assert.False(t, IsCampaignItem("post-1"))
    assert.True(t, IsCampaignItem("campaign:x"))
}

func TestSearchFeed(t *testing.T) {
    p := post("p1", 0)
    p.Content = "Beach cleanup this Sunday"
    p.AuthorName = "Dana"
    c := campaign("c1", time.Minute)
    c.Title = "Blood Donation Drive"

    composed := Compose(NormalizePosts([]model.Post{p}), NormalizeCampaigns([]model.Campaign{c}))

    assert.Len(t, SearchFeed(composed, "beach"), 1)
    assert.Len(t, SearchFeed(composed, "dana"), 1)
    assert.Len(t, SearchFeed(composed, "donation"), 1, "campaign title must match")
    assert.Empty(t, SearchFeed(composed, "nothing-here"))
    assert.Empty(t, SearchFeed(composed, "   "))
}
