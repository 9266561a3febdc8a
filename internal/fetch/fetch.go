// Pacote fetch encapsula o cliente HTTP (proxy/timeout/retry) e o resultado
// rotulado de cada consulta externa (Outcome): sucesso ou ausência com motivo.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// maxBody limita respostas de placar/evento.
const maxBody = 8 << 20

// Client é um cliente HTTP com retry.
type Client struct {
	http  *http.Client
	retry int
}

// Options são os parâmetros do cliente.
type Options struct {
	ProxyHTTP  string
	ProxyHTTPS string
	Timeout    time.Duration
	Retry      int
}

// New cria o cliente com proxy http/https e timeouts básicos.
func New(opts Options) (*Client, error) {
	transport := &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			if req.URL.Scheme == "https" && opts.ProxyHTTPS != "" {
				return url.Parse(opts.ProxyHTTPS)
			}
			if req.URL.Scheme == "http" && opts.ProxyHTTP != "" {
				return url.Parse(opts.ProxyHTTP)
			}
			return http.ProxyFromEnvironment(req)
		},
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   16,
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.Retry < 0 {
		opts.Retry = 0
	}
	return &Client{http: &http.Client{Transport: transport, Timeout: opts.Timeout}, retry: opts.Retry}, nil
}

// Get faz a requisição com recuo linear entre tentativas; só 2xx conta como sucesso.
func (c *Client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	var lastErr error
	attempts := c.retry + 1
	for i := 0; i < attempts; i++ {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if reqErr != nil {
			return nil, errors.Mark(fmt.Errorf("new request: %w", reqErr), ErrTransport)
		}
		// FIXTURES_UA sobrescreve o UA padrão
		ua := os.Getenv("FIXTURES_UA")
		if ua == "" {
			ua = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/143.0.0.0 Safari/537.36"
		}
		req.Header.Set("User-Agent", ua)
		req.Header.Set("Accept", "application/json")
		resp, err := c.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}
		if err == nil {
			lastErr = &StatusError{Code: resp.StatusCode, Status: resp.Status}
			resp.Body.Close()
		} else {
			lastErr = errors.Mark(err, ErrTransport)
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Mark(ctx.Err(), ErrTransport)
		case <-time.After(time.Duration(i+1) * 300 * time.Millisecond):
		}
	}
	return nil, lastErr
}

// GetJSON busca a URL e decodifica o corpo em target. Nunca devolve erro:
// qualquer falha vira Outcome ausente com motivo, e o chamador segue adiante.
func (c *Client) GetJSON(ctx context.Context, rawURL string, target any) Outcome {
	resp, err := c.Get(ctx, rawURL)
	if err != nil {
		return absent(rawURL, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return absent(rawURL, errors.Mark(fmt.Errorf("read body: %w", err), ErrTransport))
	}
	if err := sonic.Unmarshal(b, target); err != nil {
		return absent(rawURL, errors.Mark(fmt.Errorf("decode json: %w", err), ErrDecode))
	}
	return Outcome{URL: rawURL, OK: true, Status: resp.StatusCode}
}
