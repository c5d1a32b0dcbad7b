package auth

import "testing"

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plain password")
	}

	if !svc.Verify(hash, "s3cret") {
		t.Error("correct password not verified")
	}
	if svc.Verify(hash, "wrong") {
		t.Error("wrong password verified")
	}
}

func TestPasswordServiceImpl_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	h1, err := svc.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := svc.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}
