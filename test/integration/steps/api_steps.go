package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes IDs captured by the setup steps, so feature
// files never hard-code autoincrement values. Named placeholders like
// {{category_id:Mercado}} resolve a specific row; the bare forms resolve the
// most recently created one.
func (t *testContext) replacePlaceholders(content string) string {
	for name, id := range t.categoryIDs {
		content = strings.ReplaceAll(content, "{{category_id:"+name+"}}", strconv.FormatInt(id, 10))
	}
	for name, id := range t.accountIDs {
		content = strings.ReplaceAll(content, "{{account_id:"+name+"}}", strconv.FormatInt(id, 10))
	}
	content = strings.ReplaceAll(content, "{{category_id}}", strconv.FormatInt(t.lastCategoryID, 10))
	content = strings.ReplaceAll(content, "{{account_id}}", strconv.FormatInt(t.lastAccountID, 10))
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var parsed any
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = parsed
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseFieldShouldBeTheCurrentUserID(field string) error {
	return t.theResponseFieldShouldBe(field, t.currentUserID.String())
}

func (t *testContext) theResponseShouldHaveItems(quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	arr, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %v", t.response.body)
	}
	if len(arr) != quantity {
		return fmt.Errorf("expected %d items, got %d: %v", quantity, len(arr), arr)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(field string, quantity int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	arr, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a JSON array: %v", field, value)
	}
	if len(arr) != quantity {
		return fmt.Errorf("expected %d items in '%s', got %d: %v", quantity, field, len(arr), arr)
	}
	return nil
}

// theSummaryForCategoryShouldTotal looks a category up by name inside the
// porCategoria list, since aggregate order is unspecified.
func (t *testContext) theSummaryForCategoryShouldTotal(categoryName, expectedTotal string) error {
	value, err := t.responseField("porCategoria")
	if err != nil {
		return err
	}
	arr, ok := value.([]any)
	if !ok {
		return fmt.Errorf("porCategoria is not a JSON array: %v", value)
	}

	for _, item := range arr {
		group, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if group["nome"] == categoryName {
			total := fmt.Sprintf("%v", group["total"])
			if total != expectedTotal {
				return fmt.Errorf("category '%s' expected total '%s', got '%s'", categoryName, expectedTotal, total)
			}
			return nil
		}
	}
	return fmt.Errorf("category '%s' not found in summary: %v", categoryName, arr)
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return value, nil
}

// getFieldValue resolves a dot separated path in a decoded JSON value.
// Numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
		} else {
			m, ok := field.(map[string]any)
			if !ok {
				return nil
			}
			field = m[currentField]
		}
	}

	return field
}
