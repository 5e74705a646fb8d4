package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"homestay/config"
	"homestay/models"
	"homestay/services/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

var es *elasticsearch.Client

var esLog logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)

const stayIndex = "stays"

// ConnectElastic khởi tạo client Elasticsearch nếu ELASTIC_ADDR được cấu
// hình. Không cấu hình thì tìm kiếm rơi về view builder trong bộ nhớ.
func ConnectElastic() {
	addr := config.GetEnv("ELASTIC_ADDR")
	if addr == "" {
		esLog.Info("ELASTIC_ADDR chưa cấu hình, bỏ qua Elasticsearch")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{addr},
		Username:  config.GetEnv("ELASTIC_USER"),
		Password:  config.GetEnv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		esLog.Error("Lỗi khi khởi tạo Elasticsearch client: %v", err)
		return
	}
	es = client
	esLog.Info("Kết nối Elasticsearch thành công")
}

// ElasticEnabled báo Elasticsearch có sẵn sàng không.
func ElasticEnabled() bool {
	return es != nil
}

// IndexStay đồng bộ một stay vào index; best-effort, caller chỉ log lỗi.
func IndexStay(stay models.Stay) error {
	if es == nil {
		return nil
	}
	res, err := es.Index(
		stayIndex,
		esutil.NewJSONReader(stay),
		es.Index.WithDocumentID(strconv.FormatUint(uint64(stay.ID), 10)),
		es.Index.WithContext(config.Ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index stay %d: %s", stay.ID, res.String())
	}
	return nil
}

// RemoveStayIndex xóa stay khỏi index khi record bị xóa.
func RemoveStayIndex(stayID uint) error {
	if es == nil {
		return nil
	}
	res, err := es.Delete(
		stayIndex,
		strconv.FormatUint(uint64(stayID), 10),
		es.Delete.WithContext(config.Ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return nil
}

// SearchStayIDs tìm stay theo tên khách / ghi chú trong phạm vi một tài
// khoản, trả danh sách ID để lọc lại trên snapshot trong bộ nhớ.
func SearchStayIDs(ownerID uint, query string) ([]uint, error) {
	if es == nil {
		return nil, fmt.Errorf("elasticsearch chưa được cấu hình")
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":     query,
							"fields":    []string{"guestName^2", "notes"},
							"fuzziness": "AUTO",
						},
					},
				},
				"filter": []map[string]interface{}{
					{"term": map[string]interface{}{"userId": ownerID}},
				},
			},
		},
		"size": 100,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := es.Search(
		es.Search.WithContext(config.Ctx),
		es.Search.WithIndex(stayIndex),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search stays: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		id, err := strconv.ParseUint(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
