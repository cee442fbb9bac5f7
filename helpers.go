package ettndcsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/spf13/cast"
)

func DoRequest(ctx context.Context, url string, method string, body interface{}, apiKey string, headers map[string]interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(&body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	if apiKey != "" {
		request.Header.Add("Content-Type", "application/json")
		request.Header.Add("authorization", "API-KEY")
		request.Header.Add("X-API-KEY", apiKey)
	}

	for key, value := range headers {
		request.Header.Add(key, cast.ToString(value))
	}

	client := &http.Client{}
	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respByte, err := io.ReadAll(resp.Body)
	if cast.ToInt(resp.StatusCode) > 300 {
		if err != nil {
			return nil, errors.New(string(respByte) + err.Error())
		}
		return respByte, errors.New(string(respByte))
	}

	return respByte, err
}

func RemoveDuplicateStrings(arr []string, isLower bool) []string {
	// Use a map to track unique values
	uniqueMap := make(map[string]bool)
	var uniqueArr []string

	for _, val := range arr {
		if _, exists := uniqueMap[val]; !exists {
			uniqueMap[val] = true

			if isLower {
				uniqueArr = append(uniqueArr, strings.ToLower(val))
			} else {
				uniqueArr = append(uniqueArr, val)
			}
		}
	}

	return uniqueArr
}

func Round(number float64, precision int) float64 {
	scale := math.Pow10(precision)
	return math.Round(number*scale) / scale
}

func Contains(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

func ContainsLike(s []string, e string) bool {
	for _, a := range s {
		if strings.Contains(e, a) {
			return true
		}
	}
	return false
}
