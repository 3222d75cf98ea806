// Package store 提供数据集的内存缓存。
// 每次导入产出一个新数据集（uuid 作缓存键），旧数据集保留可查；
// 查询层对取出的数据集只读，避免跨查询污染。
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/model"
)

// ErrDatasetNotFound 数据集不存在
var ErrDatasetNotFound = errors.New("dataset not found")

// ErrNoDataset 尚未导入任何数据
var ErrNoDataset = errors.New("no dataset loaded")

// MemoryStore 内存数据集存储
type MemoryStore struct {
	datasets  map[string]*model.Dataset
	currentID string
	mu        sync.RWMutex
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		datasets: make(map[string]*model.Dataset),
	}
}

// Put 存入数据集并设为当前数据集
func (s *MemoryStore) Put(ds *model.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[ds.ID] = ds
	s.currentID = ds.ID
}

// Get 按 ID 获取数据集
func (s *MemoryStore) Get(id string) (*model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[id]
	if !ok {
		return nil, ErrDatasetNotFound
	}
	return ds, nil
}

// Current 获取当前数据集
func (s *MemoryStore) Current() (*model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentID == "" {
		return nil, ErrNoDataset
	}
	ds, ok := s.datasets[s.currentID]
	if !ok {
		return nil, ErrNoDataset
	}
	return ds, nil
}

// List 列出全部数据集（按装载时间升序）
func (s *MemoryStore) List() []*model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Dataset, 0, len(s.datasets))
	for _, ds := range s.datasets {
		out = append(out, ds)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoadedAt.Before(out[j].LoadedAt) })
	return out
}

// Count 数据集数量
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.datasets)
}

// Clear 清空全部数据集
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets = make(map[string]*model.Dataset)
	s.currentID = ""
}
