package repository

import (
	"database/sql"
	"member-api/model"
)

// IMemberRepository defines read access to the member store.
type IMemberRepository interface {
	GetMemberByID(id int64) (*model.Member, error)
	GetMemberByEmail(email string) (*model.Member, error)
}

type MemberRepository struct {
	DB *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) GetMemberByID(id int64) (*model.Member, error) {
	member := &model.Member{}
	query := `SELECT id, email, password, role, created_at FROM members WHERE id=$1`
	err := r.DB.QueryRow(query, id).Scan(&member.ID, &member.Email, &member.Password, &member.Role, &member.CreatedAt)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *MemberRepository) GetMemberByEmail(email string) (*model.Member, error) {
	member := &model.Member{}
	query := `SELECT id, email, password, role, created_at FROM members WHERE email=$1`
	err := r.DB.QueryRow(query, email).Scan(&member.ID, &member.Email, &member.Password, &member.Role, &member.CreatedAt)
	if err != nil {
		return nil, err
	}
	return member, nil
}
