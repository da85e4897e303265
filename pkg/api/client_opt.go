package api

import (
	"net/http"
)

type oauth2Opt struct {
	token string
}

func OAuth2(prefix, token string) *oauth2Opt {
	return &oauth2Opt{token: prefix + " " + token}
}

func (opt *oauth2Opt) Do(client defaultClient, req *http.Request) {
	req.Header.Add("Authorization", opt.token)
}

type idempotencyOpt struct {
	key string
}

// Idempotency attaches a client-generated idempotency key. Wallet mutations
// send one so a replayed request cannot double-apply.
func Idempotency(key string) *idempotencyOpt {
	return &idempotencyOpt{key: key}
}

func (opt *idempotencyOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Add("Idempotency-Key", opt.key)
}
