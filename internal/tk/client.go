package tk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the Tweede Kamer gegevensmagazijn OData endpoint.
const DefaultBaseURL = "https://gegevensmagazijn.tweedekamer.nl/OData/v4/2.0"

// pageSize is the API maximum page size.
const pageSize = 250

// maxErrorBody caps how much of a remote error body is kept in error messages.
const maxErrorBody = 200

const userAgent = "kamerdata/1.0"

// Vote kinds as the API spells them.
const (
	VoteFor     = "Voor"
	VoteAgainst = "Tegen"
)

// DocumentActor relations selected when expanding motions.
const (
	RelationFirstSigner = "Eerste ondertekenaar"
	RelationCoSigner    = "Mede ondertekenaar"
)

// Vote is one Stemming record, reduced to the columns the analysis uses.
type Vote struct {
	DecisionID string `json:"Besluit_Id"`
	Party      string `json:"ActorFractie"`
	Kind       string `json:"Soort"`
	ChangedAt  string `json:"GewijzigdOp"`
}

// Document is one motion with its signer relations. The DocumentActor items
// are kept as raw JSON so the nested actor data survives untouched into the
// output file.
type Document struct {
	ID      string            `json:"Id"`
	Date    string            `json:"Datum"`
	Kind    string            `json:"Soort"`
	Title   string            `json:"Titel"`
	Subject string            `json:"Onderwerp"`
	Actors  []json.RawMessage `json:"DocumentActor"`
}

type votePage struct {
	Value []Vote `json:"value"`
}

type documentPage struct {
	Value    []Document `json:"value"`
	NextLink string     `json:"@odata.nextLink"`
}

// Client wraps the OData API client
type Client struct {
	baseURL    string
	httpClient *http.Client

	votePause     time.Duration
	motionPause   time.Duration
	motionTimeout time.Duration
}

// NewClient creates a new OData API client. The vote path deliberately runs
// without a request timeout; motion requests are bounded by motionTimeout.
func NewClient(baseURL string, votePause, motionPause, motionTimeout time.Duration) *Client {
	return &Client{
		baseURL:       baseURL,
		httpClient:    &http.Client{},
		votePause:     votePause,
		motionPause:   motionPause,
		motionTimeout: motionTimeout,
	}
}

// doRequest makes a GET request to the OData API
func (c *Client) doRequest(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// readAndClose reads the body and closes it. Use in paginated loops
// instead of defer resp.Body.Close() to avoid leaking connections.
func readAndClose(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}

// readErrorAndClose reads a truncated error body and closes it.
func readErrorAndClose(resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("odata API error %d: %s", resp.StatusCode, string(body))
}

// FetchVotes fetches Stemming records with offset pagination, optionally
// restricted by an OData filter expression. The loop stops on the first page
// shorter than the page size. On a request failure it logs, aborts the loop
// and returns whatever was accumulated so far together with the error.
func (c *Client) FetchVotes(ctx context.Context, filter string) ([]Vote, error) {
	var allVotes []Vote
	skip := 0

	for page := 1; ; page++ {
		u := fmt.Sprintf("%s/Stemming?$top=%d&$skip=%d", c.baseURL, pageSize, skip)
		if filter != "" {
			u = fmt.Sprintf("%s/Stemming?$filter=%s&$top=%d&$skip=%d",
				c.baseURL, url.QueryEscape(filter), pageSize, skip)
		}

		if page == 1 || page%10 == 0 {
			slog.Info("Fetching vote page", "page", page, "skip", skip, "total", len(allVotes))
		}

		resp, err := c.doRequest(ctx, u)
		if err != nil {
			slog.Error("Vote page request failed", "page", page, "error", err)
			return allVotes, err
		}

		if resp.StatusCode != http.StatusOK {
			err := readErrorAndClose(resp)
			slog.Error("Vote page request rejected", "page", page, "error", err)
			return allVotes, err
		}

		var body votePage
		if err := readAndClose(resp, &body); err != nil {
			err = fmt.Errorf("failed to decode vote page: %w", err)
			slog.Error("Vote page decode failed", "page", page, "error", err)
			return allVotes, err
		}

		allVotes = append(allVotes, body.Value...)

		// A short (or empty) page is the last one.
		if len(body.Value) < pageSize {
			break
		}

		skip += pageSize
		time.Sleep(c.votePause)
	}

	return allVotes, nil
}

// FetchMotions fetches motion documents between dateFrom and dateTo
// (YYYY-MM-DD, inclusive) with their first-signer and co-signer relations
// expanded. Pagination follows @odata.nextLink when the server supplies one
// and falls back to $skip continuation on a full page without one.
func (c *Client) FetchMotions(ctx context.Context, dateFrom, dateTo string) ([]Document, error) {
	u := c.baseURL + "/Document?" + motionQuery(dateFrom, dateTo).Encode()

	var allDocs []Document
	skip := 0

	for page := 1; ; page++ {
		if page == 1 || page%10 == 0 {
			slog.Info("Fetching motion page", "page", page, "skip", skip, "total", len(allDocs))
		}

		reqCtx, cancel := context.WithTimeout(ctx, c.motionTimeout)
		resp, err := c.doRequest(reqCtx, u)
		if err != nil {
			cancel()
			slog.Error("Motion page request failed", "page", page, "error", err)
			return allDocs, err
		}

		if resp.StatusCode != http.StatusOK {
			err := readErrorAndClose(resp)
			cancel()
			slog.Error("Motion page request rejected", "page", page, "error", err)
			return allDocs, err
		}

		var body documentPage
		err = readAndClose(resp, &body)
		cancel()
		if err != nil {
			err = fmt.Errorf("failed to decode document page: %w", err)
			slog.Error("Motion page decode failed", "page", page, "error", err)
			return allDocs, err
		}

		allDocs = append(allDocs, body.Value...)

		if len(body.Value) < pageSize {
			break
		}

		if body.NextLink != "" {
			u = body.NextLink
		} else {
			// Full page without a next link: continue with $skip.
			skip += pageSize
			query := motionQuery(dateFrom, dateTo)
			query.Set("$skip", strconv.Itoa(skip))
			u = c.baseURL + "/Document?" + query.Encode()
		}

		time.Sleep(c.motionPause)
	}

	return allDocs, nil
}

func motionQuery(dateFrom, dateTo string) url.Values {
	filter := fmt.Sprintf(
		"Verwijderd eq false and Soort eq 'Motie' and Datum ge %s and Datum le %s",
		dateFrom, dateTo)
	expand := fmt.Sprintf("DocumentActor($filter=Relatie eq '%s' or Relatie eq '%s')",
		RelationFirstSigner, RelationCoSigner)

	return url.Values{
		"$filter": {filter},
		"$expand": {expand},
		"$select": {"Id,Datum,Soort,Titel,Onderwerp,DocumentActor"},
		"$top":    {strconv.Itoa(pageSize)},
	}
}
