package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client — тонкий типизированный клиент к коллекциям PocketBase.
// Схема и авторизация целиком на стороне бекенда; клиент только
// читает записи и обновляет поля одной записи.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// ListParams описывает параметры выборки: фильтр (подмножество языка
// запросов PocketBase, например "is_active = true"), ключи сортировки,
// путь expand для вложенных связей и ограничение количества записей.
type ListParams struct {
	Filter  string
	Sort    string
	Expand  string
	PerPage int
}

type listResponse struct {
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalItems int             `json:"totalItems"`
	Items      json.RawMessage `json:"items"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// List выполняет выборку записей коллекции и декодирует items в dest
// (указатель на срез). Ошибка отмены контекста доходит до вызывающего
// нетронутой через цепочку %w.
func (c *Client) List(ctx context.Context, collection string, p ListParams, dest any) error {
	const op = "pocketbase.Client.List"

	q := url.Values{}
	if p.Filter != "" {
		q.Set("filter", p.Filter)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Expand != "" {
		q.Set("expand", p.Expand)
	}
	if p.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(p.PerPage))
	}

	reqURL := fmt.Sprintf("%s/api/collections/%s/records", c.baseURL, collection)
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status code: %s", op, resp.Status)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	if err := json.Unmarshal(list.Items, dest); err != nil {
		return fmt.Errorf("%s: decode items: %w", op, err)
	}

	return nil
}

// GetOne читает одну запись коллекции по id.
func (c *Client) GetOne(ctx context.Context, collection, id, expand string, dest any) error {
	const op = "pocketbase.Client.GetOne"

	reqURL := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, url.PathEscape(id))
	if expand != "" {
		reqURL += "?expand=" + url.QueryEscape(expand)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status code: %s", op, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	return nil
}

// Update частично обновляет поля одной записи (PATCH).
// Никакого optimistic-concurrency токена нет: при конкурентных
// обновлениях побеждает последний пишущий.
func (c *Client) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	const op = "pocketbase.Client.Update"

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%s: encode fields: %w", op, err)
	}

	reqURL := fmt.Sprintf("%s/api/collections/%s/records/%s", c.baseURL, collection, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status code: %s", op, resp.Status)
	}

	return nil
}
