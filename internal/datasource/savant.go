package datasource

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/yourusername/yrfi-edge/internal/models"
)

const (
	sourceName = "baseball_savant"

	// Anchors in the Savant player pages
	seasonStatsTableID = "statcast_stats_pitching"
	firstInningRowID   = "mlb_inningSplits-tr_0"

	// Column offsets in the season table
	seasonYearCell = 0
	seasonKCell    = 17
	seasonBBCell   = 18

	// Column offsets in the inning-splits row
	splitsERACell  = 5
	splitsWHIPCell = 17
	splitsMinCells = 18

	// League-average row marker in the season table
	leagueAverageYear = "MLB"
)

var playerIDPattern = regexp.MustCompile(`/savant-player/([^?]+)`)

// SavantClient implements StatSource against Baseball Savant player pages.
type SavantClient struct {
	httpClient *ScraperHTTPClient
	baseURL    string
	logger     *logrus.Logger
}

// NewSavantClient creates a new Baseball Savant stat source
func NewSavantClient(httpClient *ScraperHTTPClient, baseURL string, logger *logrus.Logger) *SavantClient {
	if baseURL == "" {
		baseURL = "https://baseballsavant.mlb.com"
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &SavantClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// Name returns the stat source name
func (c *SavantClient) Name() string {
	return sourceName
}

// PitcherStats retrieves season rate stats and first-inning splits for one
// pitcher. Both pages are fetched through a single scoped session so any
// cookie assigned by the first response is presented on the second request.
func (c *SavantClient) PitcherStats(ctx context.Context, playerURL string, season int) (*PitcherStats, error) {
	playerID, err := ExtractPlayerID(playerURL)
	if err != nil {
		return nil, NewStatSourceError(sourceName, ErrCodeInvalidURL, "not a savant player URL", err)
	}

	sess, err := c.httpClient.NewSession()
	if err != nil {
		return nil, NewStatSourceError(sourceName, ErrCodeNetworkError, "failed to open session", err)
	}
	defer sess.Close()

	seasonStats, err := c.fetchSeasonStats(ctx, sess, playerID, season)
	if err != nil {
		return nil, err
	}

	splits, err := c.fetchFirstInningSplits(ctx, sess, playerID, season)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"player_id": playerID,
		"season":    season,
	}).Debug("Fetched pitcher stats")

	return &PitcherStats{
		PlayerID:   playerID,
		PlayerName: PlayerNameFromID(playerID),
		Season:     *seasonStats,
		Splits:     *splits,
	}, nil
}

// fetchSeasonStats reads the statcast pitching table off the player page and
// returns the requested season's row together with the league-average row.
func (c *SavantClient) fetchSeasonStats(ctx context.Context, sess *Session, playerID string, season int) (*models.RawSeasonStats, error) {
	url := fmt.Sprintf("%s/savant-player/%s", c.baseURL, playerID)

	doc, err := c.fetchDocument(ctx, sess, url)
	if err != nil {
		return nil, err
	}

	statsDiv := findByID(doc, seasonStatsTableID)
	if statsDiv == nil {
		return nil, NewStatSourceError(sourceName, ErrCodeInvalidData, "season stats table not found", nil)
	}

	table := findFirst(statsDiv, "table")
	if table == nil {
		return nil, NewStatSourceError(sourceName, ErrCodeInvalidData, "season stats table not found", nil)
	}

	wantYear := strconv.Itoa(season)
	var seasonRow *models.RawSeasonStats
	mlbK, mlbBB := models.NotAvailable, models.NotAvailable

	rows := findAll(table, "tr")
	for _, row := range rows {
		cells := findAll(row, "td")
		if len(cells) == 0 {
			continue
		}

		year := innerText(cells[seasonYearCell])
		k := cellText(cells, seasonKCell)
		bb := cellText(cells, seasonBBCell)

		if year == leagueAverageYear {
			mlbK, mlbBB = k, bb
		}
		if year == wantYear {
			seasonRow = &models.RawSeasonStats{
				Year:      year,
				KPercent:  k,
				BBPercent: bb,
			}
		}
	}

	if seasonRow == nil {
		return nil, NewStatSourceError(sourceName, ErrCodeNotFound,
			fmt.Sprintf("no season row for %s", wantYear), nil)
	}

	seasonRow.MLBKPercent = mlbK
	seasonRow.MLBBBPercent = mlbBB
	return seasonRow, nil
}

// fetchFirstInningSplits reads the first-inning ERA and WHIP from the splits page.
func (c *SavantClient) fetchFirstInningSplits(ctx context.Context, sess *Session, playerID string, season int) (*models.RawSplitStats, error) {
	url := fmt.Sprintf("%s/savant-player/%s?stats=splits-r-pitching-mlb&season=%d", c.baseURL, playerID, season)

	doc, err := c.fetchDocument(ctx, sess, url)
	if err != nil {
		return nil, err
	}

	row := findByID(doc, firstInningRowID)
	if row == nil {
		return nil, NewStatSourceError(sourceName, ErrCodeInvalidData, "first inning splits row not found", nil)
	}

	cells := findAll(row, "td")
	if len(cells) < splitsMinCells {
		return nil, NewStatSourceError(sourceName, ErrCodeInvalidData,
			fmt.Sprintf("first inning row has %d cells, expected at least %d", len(cells), splitsMinCells), nil)
	}

	return &models.RawSplitStats{
		FirstInningERA:  innerText(cells[splitsERACell]),
		FirstInningWHIP: innerText(cells[splitsWHIPCell]),
	}, nil
}

// fetchDocument executes a GET within the session and parses the body as HTML.
func (c *SavantClient) fetchDocument(ctx context.Context, sess *Session, url string) (*html.Node, error) {
	resp, err := sess.Get(ctx, url)
	if err != nil {
		return nil, NewStatSourceError(sourceName, ErrCodeNetworkError, "failed to fetch page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, NewStatSourceError(sourceName, ErrCodeNotFound, "player page not found", nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewStatSourceError(sourceName, ErrCodeServerError,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, NewStatSourceError(sourceName, ErrCodeInvalidData, "failed to parse page", err)
	}
	return doc, nil
}

// ExtractPlayerID extracts the player slug from a Baseball Savant URL.
func ExtractPlayerID(playerURL string) (string, error) {
	match := playerIDPattern.FindStringSubmatch(playerURL)
	if match == nil {
		return "", fmt.Errorf("no player id in URL %q", playerURL)
	}
	return match[1], nil
}

// PlayerNameFromID derives a display name from a player slug such as
// "jacob-degrom-594798" (trailing numeric id dropped, words title-cased).
func PlayerNameFromID(playerID string) string {
	parts := strings.Split(playerID, "-")
	if len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

// cellText returns the trimmed text of cell i, or the NotAvailable sentinel
// when the row is too short.
func cellText(cells []*html.Node, i int) string {
	if i >= len(cells) {
		return models.NotAvailable
	}
	return innerText(cells[i])
}

// findByID walks the tree for the first element with the given id attribute.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// findFirst returns the first descendant element with the given tag.
func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirst(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns all descendant elements with the given tag, in document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			out = append(out, node)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return out
}

// innerText concatenates and trims all text nodes under n.
func innerText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
