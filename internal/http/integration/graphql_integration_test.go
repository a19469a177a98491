package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkpost/inkpost/internal/config"
	"github.com/inkpost/inkpost/internal/db"
	apphttp "github.com/inkpost/inkpost/internal/http"
	"go.mongodb.org/mongo-driver/mongo"
)

func testConfig() config.Config {
	return config.Config{
		Env:               "test",
		Port:              0,
		JWTSecret:         "test-secret-key",
		JWTAccessTTLHours: 1,
		BcryptCost:        4,
		AllowedOrigins:    []string{"http://localhost:3000"},
	}
}

// setupRouter connects to a real mongo instance; the suite is skipped unless
// TEST_MONGO_URI is set.
func setupRouter(t *testing.T) (*gin.Engine, *mongo.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uri := os.Getenv("TEST_MONGO_URI")

	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping mongo integration tests")
	}

	client, database, err := db.Connect(uri, "inkpost_test")

	if err != nil {
		t.Fatalf("failed to connect to mongo: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.Drop(ctx); err != nil {
		t.Fatalf("failed to reset test database: %v", err)
	}

	if err := db.EnsureIndexes(ctx, database); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return apphttp.NewRouter(logger, database, testConfig()), database
}

func execGraphQL(t *testing.T, router *gin.Engine, query string, variables map[string]interface{}) map[string]json.RawMessage {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var envelope map[string]json.RawMessage

	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	return envelope
}

func TestBlogLifecycleAgainstMongo(t *testing.T) {
	router, _ := setupRouter(t)

	// category
	env := execGraphQL(t, router, `mutation($n: String!) { addCategory(name: $n) { id name } }`,
		map[string]interface{}{"n": "golang"})

	var catData struct {
		AddCategory struct {
			ID string `json:"id"`
		} `json:"addCategory"`
	}
	if err := json.Unmarshal(env["data"], &catData); err != nil {
		t.Fatalf("decode: %v, raw=%s", err, env["data"])
	}

	// post referencing the category
	env = execGraphQL(t, router, `
		mutation($t: String!, $d: String!, $c: ID!) {
			addPost(title: $t, description: $d, category: $c) { id category { name } }
		}`,
		map[string]interface{}{"t": "Hello", "d": "Body", "c": catData.AddCategory.ID})

	var postData struct {
		AddPost struct {
			ID       string `json:"id"`
			Category struct {
				Name string `json:"name"`
			} `json:"category"`
		} `json:"addPost"`
	}
	if err := json.Unmarshal(env["data"], &postData); err != nil {
		t.Fatalf("decode: %v, raw=%s", err, env["data"])
	}

	if postData.AddPost.Category.Name != "golang" {
		t.Fatalf("category did not resolve through mongo: %+v", postData)
	}

	// delete then confirm null lookup
	execGraphQL(t, router, `mutation($id: ID!) { deletePost(id: $id) { id } }`,
		map[string]interface{}{"id": postData.AddPost.ID})

	env = execGraphQL(t, router, `query($id: ID!) { post(id: $id) { id } }`,
		map[string]interface{}{"id": postData.AddPost.ID})

	if string(env["data"]) != `{"post":null}` {
		t.Fatalf("expected null post, got %s", env["data"])
	}
}

func TestRegisterLoginAgainstMongo(t *testing.T) {
	router, _ := setupRouter(t)

	email := fmt.Sprintf("gopher-%d@example.com", time.Now().UnixNano())

	execGraphQL(t, router, `
		mutation($u: String!, $e: String!, $p: String!) {
			register(username: $u, email: $e, password: $p) { username }
		}`,
		map[string]interface{}{"u": "gopher", "e": email, "p": "hunter2"})

	env := execGraphQL(t, router, `
		mutation($e: String!, $p: String!) { login(email: $e, password: $p) { id accessToken } }`,
		map[string]interface{}{"e": email, "p": "hunter2"})

	var loginData struct {
		Login struct {
			AccessToken string `json:"accessToken"`
		} `json:"login"`
	}
	if err := json.Unmarshal(env["data"], &loginData); err != nil {
		t.Fatalf("decode: %v, raw=%s", err, env["data"])
	}

	if loginData.Login.AccessToken == "" {
		t.Fatalf("expected access token from login")
	}

	// duplicate registration must surface the typed error
	env = execGraphQL(t, router, `
		mutation($u: String!, $e: String!, $p: String!) {
			register(username: $u, email: $e, password: $p) { username }
		}`,
		map[string]interface{}{"u": "other", "e": email, "p": "hunter2"})

	var errs []struct {
		Extensions struct {
			Code string `json:"code"`
		} `json:"extensions"`
	}
	if err := json.Unmarshal(env["errors"], &errs); err != nil {
		t.Fatalf("decode errors: %v, raw=%s", err, env["errors"])
	}

	if len(errs) != 1 || errs[0].Extensions.Code != "EMAIL_TAKEN" {
		t.Fatalf("expected EMAIL_TAKEN, got %+v", errs)
	}
}
