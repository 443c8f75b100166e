package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"strings"
)

// Proxy is one outbound proxy. URL is what tls-client expects; Display omits
// credentials and is safe to log.
type Proxy struct {
	URL     string
	Display string
}

// ProxyPool hands out proxies for attempts. A nil pool means direct connections.
type ProxyPool struct {
	proxies []Proxy
}

// parseProxy accepts:
//   - ip:port
//   - ip:port:username:password
//   - http(s)://[username:password@]host:port
func parseProxy(line string) (Proxy, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Proxy{}, false
	}

	if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
		parsed, err := url.Parse(line)
		if err != nil || parsed.Host == "" {
			return Proxy{}, false
		}
		p := Proxy{URL: "http://" + parsed.Host, Display: parsed.Host}
		if parsed.User != nil {
			password, _ := parsed.User.Password()
			p.URL = fmt.Sprintf("http://%s:%s@%s", parsed.User.Username(), password, parsed.Host)
		}
		return p, true
	}

	parts := strings.Split(line, ":")
	switch len(parts) {
	case 2:
		hostPort := parts[0] + ":" + parts[1]
		return Proxy{URL: "http://" + hostPort, Display: hostPort}, true
	case 4:
		hostPort := parts[0] + ":" + parts[1]
		return Proxy{
			URL:     fmt.Sprintf("http://%s:%s@%s", parts[2], parts[3], hostPort),
			Display: hostPort,
		}, true
	default:
		return Proxy{}, false
	}
}

// LoadProxyPool reads one proxy per line. Blank lines and lines starting
// with # are skipped; malformed lines are counted in skipped.
func LoadProxyPool(filename string) (pool *ProxyPool, skipped int, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open proxy file: %w", err)
	}
	defer file.Close()

	pool = &ProxyPool{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, ok := parseProxy(line)
		if !ok {
			skipped++
			continue
		}
		pool.proxies = append(pool.proxies, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("error reading proxy file: %w", err)
	}

	if len(pool.proxies) == 0 {
		return nil, skipped, fmt.Errorf("no valid proxies found in %s", filename)
	}

	return pool, skipped, nil
}

// Random returns a random proxy, or the zero Proxy for a nil pool.
func (pp *ProxyPool) Random() Proxy {
	if pp == nil || len(pp.proxies) == 0 {
		return Proxy{}
	}
	return pp.proxies[rand.Intn(len(pp.proxies))]
}

func (pp *ProxyPool) Count() int {
	if pp == nil {
		return 0
	}
	return len(pp.proxies)
}
