package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"campuscctv.xyz/inventory-service/pkg/auth"
	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
	cctvGrpc "campuscctv.xyz/inventory-service/pkg/grpc"
)

var maxZones int = 20
var camerasPerZone int = 100
var statusRounds int = 5
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var adminToken string
var grpcClient *cctvGrpc.StatusServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var deviceHeaders = map[string]string{
	common.HeaderDeviceToken:        "benchmark-token",
	common.HeaderDeviceID:           "000000000000000000000b0b",
	common.HeaderDeviceUniqueNumber: "1",
}

func main() {
	_ = godotenv.Load()

	tokens, err := auth.NewTokenManager(os.Getenv(common.EnvKeyCCTVJwtSecret), time.Hour)
	if err != nil {
		log.Fatal("CCTV_JWT_SECRET must match the server: ", err)
	}
	if adminToken, err = tokens.Issue(uuid.NewString(), auth.RoleAdmin); err != nil {
		log.Fatal(err)
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = cctvGrpc.NewStatusServiceClient(conn)

	fmt.Printf("gRPC client created\n")

	var startTime time.Time
	var usedTime time.Duration

	zoneIDs := make([]string, maxZones)
	for i := range maxZones {
		zoneIDs[i] = createZone(fmt.Sprintf("bench-%d-%s", i, uuid.NewString()[:8]))
	}
	fmt.Printf("created %v zones\n", maxZones)

	startTime = time.Now()
	var created atomic.Int64
	ipsByZone := make([][]string, maxZones)
	wg := sync.WaitGroup{}
	for i := range maxZones {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ipsByZone[i] = bulkCreate(i, zoneIDs[i], &created)
			fmt.Printf("\rbulk created cameras for zone %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rbulk created %v cameras: used time=%v seconds, throughput=%v cameras/second\n",
		created.Load(), usedTime.Seconds(), float64(created.Load())/usedTime.Seconds(),
	)

	startTime = time.Now()
	var updated atomic.Int64
	wg = sync.WaitGroup{}
	for round := range statusRounds {
		for i := range maxZones {
			wg.Add(1)
			go func() {
				defer wg.Done()
				updated.Add(int64(reportStatus(ipsByZone[i])))
				fmt.Printf("\rreported statuses round %v zone %v", round, i)
			}()
		}
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rreported %v rounds for %v zones: updated=%v, used time=%v seconds, throughput=%v records/second\n",
		statusRounds, maxZones, updated.Load(), usedTime.Seconds(),
		float64(statusRounds*maxZones*camerasPerZone)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func doJSON(method, path string, headers map[string]string, payload any, out any) int {
	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func createZone(name string) string {
	var res struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	status := doJSON(http.MethodPost, "/api/v1/zones", map[string]string{"Authorization": "Bearer " + adminToken},
		map[string]string{"name": name}, &res)
	if status != http.StatusCreated {
		panic(fmt.Sprintf("create zone failed with status %v", status))
	}
	return res.Data.ID
}

func bulkCreate(zoneIndex int, zoneID string, created *atomic.Int64) []string {
	inputs := make([]map[string]any, camerasPerZone)
	ips := make([]string, camerasPerZone)
	for i := range camerasPerZone {
		ips[i] = fmt.Sprintf("10.%d.%d.%d", 100+zoneIndex/250, zoneIndex%250, i+1)
		inputs[i] = map[string]any{
			"name":      fmt.Sprintf("%s-cam-%d", zoneID[:8], i),
			"latitude":  rndFloat64(-90, 90, 6),
			"longitude": rndFloat64(-180, 180, 6),
			"zone":      zoneID,
			"pole":      i + 1,
			"ip":        ips[i],
		}
	}

	var report cctv.BulkCreateReport
	status := doJSON(http.MethodPost, "/api/v1/cameras/bulk", map[string]string{"Authorization": "Bearer " + adminToken}, inputs, &report)
	if status == http.StatusUnprocessableEntity {
		panic("bulk create batch rejected")
	}
	created.Add(int64(report.Summary.Created))
	return ips
}

func reportStatus(ips []string) int {
	updates := make([]cctv.StatusInput, len(ips))
	for i, ip := range ips {
		alive := flipCoin()
		updates[i] = cctv.StatusInput{IP: ip, Status: &alive}
	}

	if flipCoin() {
		var report cctv.BulkStatusReport
		status := doJSON(http.MethodPatch, "/api/v1/public/cameras", deviceHeaders, updates, &report)
		if status == http.StatusTooManyRequests {
			return 0
		}
		return report.Summary.Updated
	}

	ctx := metadata.NewOutgoingContext(context.Background(), metadata.New(deviceHeaders))
	resp, err := grpcClient.BulkUpdateStatus(ctx, &cctvGrpc.BulkUpdateStatusRequest{Updates: updates})
	if err != nil || resp.Report == nil {
		return 0
	}
	return resp.Report.Summary.Updated
}
