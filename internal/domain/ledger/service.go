package ledger

import (
	"context"
	"strings"
)

// Service owns the group ledgers. Writes to a group the caller cannot access
// fail with ErrNoAccess; reads of such a group return an empty result instead.
type Service struct {
	repo   Repository
	access AccessChecker
	users  IdentityResolver
}

func NewService(repo Repository, access AccessChecker, users IdentityResolver) *Service {
	return &Service{repo: repo, access: access, users: users}
}

func (s *Service) AddRecord(ctx context.Context, input AddRecordInput) (*Record, error) {
	ok, err := s.access.HasAccess(ctx, input.Username, input.GroupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoAccess
	}

	userID, err := s.users.Resolve(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	record := Record{
		UserID:   userID,
		Amount:   input.Amount,
		Type:     input.Type,
		Category: input.Category,
		Note:     input.Note,
		Time:     input.Time,
		GroupID:  input.GroupID,
	}
	if err := s.repo.CreateRecord(ctx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// DeleteRecord removes a record by id without any ownership or group check.
// Unknown ids are ignored.
func (s *Service) DeleteRecord(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.repo.DeleteRecord(ctx, id)
}

func (s *Service) SearchRecords(ctx context.Context, username, groupID string, filter SearchFilter) (SearchResult, error) {
	empty := SearchResult{Records: []RecordView{}}

	ok, err := s.canRead(ctx, username, groupID)
	if err != nil || !ok {
		return empty, err
	}

	recordType := strings.TrimSpace(filter.Type)
	if recordType == FilterAll {
		recordType = ""
	}

	records, err := s.repo.SearchRecords(ctx, groupID, TimePattern(filter.Year, filter.Month, filter.Day), recordType)
	if err != nil {
		return empty, err
	}
	if records == nil {
		records = []RecordView{}
	}

	return SearchResult{Records: records, Summary: Summarize(records)}, nil
}

func (s *Service) GetSummary(ctx context.Context, username, groupID string, year, month int) (Summary, error) {
	result, err := s.SearchRecords(ctx, username, groupID, SearchFilter{Year: &year, Month: &month})
	if err != nil {
		return Summary{}, err
	}
	return result.Summary, nil
}

// GetRecords returns the most recent records of a group.
func (s *Service) GetRecords(ctx context.Context, username, groupID string) ([]RecordView, error) {
	result, err := s.SearchRecords(ctx, username, groupID, SearchFilter{})
	if err != nil {
		return nil, err
	}
	if len(result.Records) > recentRecordsLimit {
		return result.Records[:recentRecordsLimit], nil
	}
	return result.Records, nil
}

// Analytics totals a month of records per category.
func (s *Service) Analytics(ctx context.Context, username, groupID string, year, month int) (Analytics, error) {
	result, err := s.SearchRecords(ctx, username, groupID, SearchFilter{Year: &year, Month: &month})
	if err != nil {
		return Analytics{Income: []CategoryTotal{}, Expense: []CategoryTotal{}}, err
	}
	return ByCategory(result.Records), nil
}

func (s *Service) canRead(ctx context.Context, username, groupID string) (bool, error) {
	if strings.TrimSpace(groupID) == "" {
		return false, nil
	}
	return s.access.HasAccess(ctx, username, groupID)
}
