package httpserver

import (
	"net/http"
	"testing"

	authzhttp "scholarstream/contexts/identity-access/authorization-service/transport/http"
	"scholarstream/internal/shared/identity"
)

func TestRegisterAccountIsIdempotent(t *testing.T) {
	server := newTestServer()
	server.modules.Identity.Verifier.Register("token-new", identity.Identity{UserID: "N", Email: "new@x.com"})

	first := server.do(http.MethodPost, "/users", "token-new", authzhttp.RegisterAccountRequest{Name: "New"})
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", first.Code, first.Body.String())
	}
	second := server.do(http.MethodPost, "/users", "token-new", authzhttp.RegisterAccountRequest{Name: "Renamed"})
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d", second.Code)
	}
	var resp authzhttp.RegisterAccountResponse
	decodeBody(t, second, &resp)
	if resp.Created || resp.Account.Name != "New" || resp.Account.Role != "student" {
		t.Fatalf("replay must return the original account: %+v", resp)
	}
}

func TestGetRoleOwnerOrAdmin(t *testing.T) {
	server := newTestServer()
	if rr := server.do(http.MethodGet, "/users/role/A@X.com", studentAToken, nil); rr.Code != http.StatusOK {
		t.Fatalf("owner should read own role, got %d", rr.Code)
	}
	if rr := server.do(http.MethodGet, "/users/role/a@x.com", studentBToken, nil); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	rr := server.do(http.MethodGet, "/users/role/mod@x.com", adminToken, nil)
	var resp authzhttp.RoleResponse
	decodeBody(t, rr, &resp)
	if rr.Code != http.StatusOK || resp.Role != "moderator" {
		t.Fatalf("admin should read any role: %d %+v", rr.Code, resp)
	}
}

func TestUpdateRoleAndDeleteAccountRequireAdmin(t *testing.T) {
	server := newTestServer()

	if rr := server.do(http.MethodPatch, "/users/A/role", moderatorTok, authzhttp.UpdateRoleRequest{Role: "admin"}); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for moderator, got %d", rr.Code)
	}
	if rr := server.do(http.MethodPatch, "/users/A/role", adminToken, authzhttp.UpdateRoleRequest{Role: "superuser"}); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", rr.Code)
	}
	if rr := server.do(http.MethodPatch, "/users/A/role", adminToken, authzhttp.UpdateRoleRequest{Role: "moderator"}); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	if rr := server.do(http.MethodDelete, "/users/Z", adminToken, nil); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 deleting admin, got %d", rr.Code)
	}
	if rr := server.do(http.MethodDelete, "/users/B", studentAToken, nil); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student, got %d", rr.Code)
	}
	if rr := server.do(http.MethodDelete, "/users/B", adminToken, nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr := server.do(http.MethodDelete, "/users/B", adminToken, nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing account, got %d", rr.Code)
	}
}
