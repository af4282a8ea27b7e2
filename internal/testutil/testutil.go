package testutil

import (
	"os/exec"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisContainer struct {
	Client    *goredis.Client
	Terminate func()
}

// Start container with redis
// Stop if error happened, so you may be sure container started ok
// Should be stopped when tests stopped
func StartRedisContainer(t *testing.T) RedisContainer {
	t.Helper()

	// Fail if docker rootless not found
	cmd := exec.Command("docker", "info", "--format", "{{.ServerVersion}}")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("test failed: docker rootless not available or not running. Err:%s", out)
	}

	container, err := tcredis.Run(t.Context(), "redis:7-alpine")
	require.NoError(t, err, "Error happened when starting container with redis, deal with it please")

	uri, err := container.ConnectionString(t.Context())
	require.NoError(t, err, "Error happened when getting connection string from container with redis")
	t.Logf("Container with redis started, URI=%v", uri)

	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err, "Error happened when parsing redis connection string")

	client := goredis.NewClient(opts)
	require.NoError(t, client.Ping(t.Context()).Err(), "Redis should respond to ping")

	return RedisContainer{
		Client: client,
		Terminate: func() {
			_ = client.Close()
			testcontainers.CleanupContainer(t, container)
		},
	}
}
