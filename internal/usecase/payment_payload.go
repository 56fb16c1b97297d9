package usecase

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Mercado Pago request shaping. The payload is kept as a generic map so
// callers can pass any card/pix fields the provider accepts; only the
// fields the service owns are overwritten.

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func payerOf(m map[string]any) (map[string]any, bool) {
	payer, ok := m["payer"].(map[string]any)
	return payer, ok
}

func hasPayer(m map[string]any) bool {
	payer, ok := payerOf(m)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func isSandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-")
}

// ensurePayerDefaults fills payer.type and, in sandbox, a test email when
// neither payer.id nor payer.email was given.
func ensurePayerDefaults(m map[string]any) {
	if _, ok := m["payer"]; !ok || m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := payerOf(m)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	} else if isSandboxToken() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox actually accepts.
func normalizeSandboxPayer(m map[string]any) {
	payer, ok := payerOf(m)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !isSandboxToken() {
		return
	}

	userID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func gatewayErrorContains(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

// mapGatewayError turns provider error bodies into sentinels the HTTP
// layer can map.
func mapGatewayError(err error) error {
	switch {
	case gatewayErrorContains(err, "customer not found", `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case gatewayErrorContains(err, "invalid users involved", `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case gatewayErrorContains(err, `"error":"unauthorized"`, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case gatewayErrorContains(err, `"error":"bad_request"`, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
