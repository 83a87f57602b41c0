package strip

// resolveOverlap clamps the anchors of the five tabs nearest the selection so
// no two adjacent tabs collide while both move toward the center. It runs
// once after every alignment pass; the comparisons are deliberately
// non-strict, so anchors that exactly touch stay untouched.
func (s *Strip) resolveOverlap() {
	cur := s.selected

	var leftOut, left, right, rightOut *TabPosition
	if cur > 1 {
		leftOut = &s.positions[cur-2]
	}
	if cur > 0 {
		left = &s.positions[cur-1]
	}
	center := &s.positions[cur]
	if cur < s.count-1 {
		right = &s.positions[cur+1]
	}
	if cur < s.count-2 {
		rightOut = &s.positions[cur+2]
	}

	if leftOut != nil {
		if leftOut.Right+leftOut.Width >= left.Right {
			leftOut.Right = left.Right - leftOut.Width
		}
	}

	if left != nil {
		if left.Rest+left.Width >= center.Rest {
			left.Rest = center.Rest - left.Width
		}
		if center.Right <= left.Right+left.Width {
			center.Right = left.Right + left.Width
		}
	}

	if right != nil {
		if right.Rest <= center.Rest+center.Width {
			right.Rest = center.Rest + center.Width
		}
		if center.Left+center.Width >= right.Left {
			center.Left = right.Left - center.Width
		}
	}

	if rightOut != nil {
		if rightOut.Left <= right.Left+right.Width {
			rightOut.Left = right.Left + right.Width
		}
	}
}
