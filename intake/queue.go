package intake

import (
	"errors"

	"gorm.io/gorm"

	"newsroom-video/database"
	"newsroom-video/transcode"
)

// ResetStuck moves jobs left running by a dead worker back to pending.
// Called once at startup before the pool comes up.
func ResetStuck() error {
	return database.Get().Model(&transcode.Job{}).
		Where("status = ?", transcode.StatusRunning).
		Update("status", transcode.StatusPending).Error
}

// ClaimNext takes the oldest pending job off the queue. The claim is a
// conditional update, so two workers racing for the same row leave exactly
// one holding it. Returns ok=false when the queue is empty.
func ClaimNext() (transcode.Job, bool, error) {
	db := database.Get()

	for {
		var job transcode.Job
		err := db.Where("status = ?", transcode.StatusPending).
			Order("id").First(&job).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transcode.Job{}, false, nil
		}
		if err != nil {
			return transcode.Job{}, false, err
		}

		res := db.Model(&transcode.Job{}).
			Where("id = ? AND status = ?", job.ID, transcode.StatusPending).
			Update("status", transcode.StatusRunning)
		if res.Error != nil {
			return transcode.Job{}, false, res.Error
		}
		if res.RowsAffected == 0 {
			// someone else got it, try the next row
			continue
		}
		job.Status = transcode.StatusRunning
		return job, true, nil
	}
}

// MarkFailed leaves the job row and its raw input behind for inspection.
func MarkFailed(jobID uint) error {
	return database.Get().Model(&transcode.Job{}).
		Where("id = ?", jobID).
		Update("status", transcode.StatusFailed).Error
}

// ProcessPending drains the queue: claim, encode, finalize, delete the row.
// Failures mark the row failed and retain the raw input.
func ProcessPending(runner transcode.Runner) {
	for {
		job, ok, err := ClaimNext()
		if err != nil {
			log.Errorf("claim job: %v", err)
			return
		}
		if !ok {
			return
		}

		log.Infof("job %d: encoding %s", job.ID, job.OriginalFilename)
		if err := <-runner.Start(job.InputPath, job.OutputPath, job.Spec()); err != nil {
			log.Errorf("job %d failed, raw input retained at %s: %v", job.ID, job.InputPath, err)
			if err := MarkFailed(job.ID); err != nil {
				log.Errorf("job %d: mark failed: %v", job.ID, err)
			}
			continue
		}

		if _, err := Finalize(&job); err != nil {
			log.Errorf("job %d: finalize: %v", job.ID, err)
			if err := MarkFailed(job.ID); err != nil {
				log.Errorf("job %d: mark failed: %v", job.ID, err)
			}
			continue
		}
		if err := database.Get().Unscoped().Delete(&job).Error; err != nil {
			log.Errorf("job %d: delete queue row: %v", job.ID, err)
		}
	}
}
