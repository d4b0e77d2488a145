package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"postcode-distance/internal/domain"
	"strings"
)

// Responses larger than this are not a postcode lookup result.
const maxBodyBytes = 1 << 20

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// lookupResponse mirrors the part of the postcodes.io payload we read.
// Pointers distinguish a missing field from a zero coordinate.
type lookupResponse struct {
	Result *struct {
		Longitude *float64 `json:"longitude"`
		Latitude  *float64 `json:"latitude"`
	} `json:"result"`
}

func (p *PostcodesIOResolver) newRequest(
	ctx context.Context,
	method string,
	url string,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do executes req and returns the body of a 200 response.
func (p *PostcodesIOResolver) do(req *http.Request) ([]byte, error) {
	resp, err := p.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}

func decodeLookup(body []byte) (domain.Coordinates, error) {
	var decoded lookupResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode lookup response: %w", err)
	}

	if decoded.Result == nil {
		return domain.Coordinates{}, errors.New("lookup response has no result")
	}
	if decoded.Result.Longitude == nil || decoded.Result.Latitude == nil {
		return domain.Coordinates{}, errors.New("lookup result is missing longitude or latitude")
	}

	return domain.Coordinates{
		Lon: *decoded.Result.Longitude,
		Lat: *decoded.Result.Latitude,
	}, nil
}
