package http

import (
	"net"
	"net/http"
	"time"
)

// ClientOptions はアウトバウンドHTTP接続の設定です。
// ゼロ値のフィールドには既定値が使われます。
type ClientOptions struct {
	// MaxConnsPerHost は同一ホストへの同時接続数の上限です（0は無制限）。
	MaxConnsPerHost int
	// ResponseHeaderTimeout はリクエスト送信後、レスポンスヘッダーを待つ上限です。
	ResponseHeaderTimeout time.Duration
}

const (
	defaultResponseHeaderTimeout = 15 * time.Second
	defaultMaxIdleConnsPerHost   = 16
)

// TransportOptions はオブジェクトストレージ等の外部サービス向けにTransportを調整する関数を返します。
//
// Transportそのものは呼び出し側（AWS SDKのBuildableClient等）が所有します。
// TLSClientConfigには触れないため、SDKが設定するカスタムCAバンドルはそのまま有効です。
// アップロード先は単一ホストであることが多いため、ホスト単位のアイドル接続を多めに保持します。
func TransportOptions(opts ClientOptions) func(*http.Transport) {
	if opts.ResponseHeaderTimeout <= 0 {
		opts.ResponseHeaderTimeout = defaultResponseHeaderTimeout
	}
	return func(t *http.Transport) {
		t.Proxy = http.ProxyFromEnvironment
		t.ForceAttemptHTTP2 = true
		t.MaxIdleConns = 100
		t.MaxIdleConnsPerHost = defaultMaxIdleConnsPerHost
		t.MaxConnsPerHost = opts.MaxConnsPerHost
		t.IdleConnTimeout = 90 * time.Second
		t.TLSHandshakeTimeout = 5 * time.Second
		t.ResponseHeaderTimeout = opts.ResponseHeaderTimeout
		t.ExpectContinueTimeout = time.Second
	}
}

// DialerOptions はTCP接続のタイムアウトとキープアライブを設定する関数を返します。
func DialerOptions() func(*net.Dialer) {
	return func(d *net.Dialer) {
		d.Timeout = 5 * time.Second
		d.KeepAlive = 30 * time.Second
	}
}
